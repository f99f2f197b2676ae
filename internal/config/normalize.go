package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTone()
	c.normalizeLogging()
	return nil
}

// normalizePaths expands configured directories. Empty values stay empty so
// the CLI can derive them per invocation.
func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Root) != "" {
		if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
			return fmt.Errorf("paths.root: %w", err)
		}
	} else {
		c.Paths.Root = ""
	}
	if strings.TrimSpace(c.Paths.Output) != "" {
		if c.Paths.Output, err = expandPath(c.Paths.Output); err != nil {
			return fmt.Errorf("paths.output: %w", err)
		}
	} else {
		c.Paths.Output = ""
	}
	if strings.TrimSpace(c.Paths.ConfigDir) != "" {
		if c.Paths.ConfigDir, err = expandPath(c.Paths.ConfigDir); err != nil {
			return fmt.Errorf("paths.config_dir: %w", err)
		}
	} else {
		c.Paths.ConfigDir = ""
	}
	return nil
}

func (c *Config) normalizeTone() {
	if c.Tone.Frequency == 0 {
		c.Tone.Frequency = defaultToneFrequency
	}
	if c.Tone.Amplitude == 0 {
		c.Tone.Amplitude = defaultToneAmplitude
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
