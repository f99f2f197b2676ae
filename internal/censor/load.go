package censor

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses one censor document.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Encode writes documents to w as a YAML stream in document order.
func Encode(w io.Writer, configs []*Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, cfg := range configs {
		if err := enc.Encode(cfg); err != nil {
			return err
		}
	}
	return enc.Close()
}
