package censor

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"batchcensor/internal/pathtemplate"
)

// ReplaceDir binds a relative directory to the file entries censored
// beneath it. Prefix, Suffix, and FileExtension describe how entry paths
// map to on-disk names; FileExtension falls back to the document level.
type ReplaceDir struct {
	Path          string `yaml:"path"`
	Prefix        string `yaml:"file_prefix,omitempty"`
	Suffix        string `yaml:"suffix,omitempty"`
	FileExtension string `yaml:"file_extension,omitempty"`
	Files         Files  `yaml:"files"`
}

// Template returns the name decorations for entries under the directory.
func (d *ReplaceDir) Template(defaultExtension string) pathtemplate.Template {
	ext := d.FileExtension
	if ext == "" {
		ext = defaultExtension
	}
	return pathtemplate.Template{Prefix: d.Prefix, Suffix: d.Suffix, Extension: ext}
}

// Contains reports whether a file path relative to the directory could have
// been produced by its template.
func (d *ReplaceDir) Contains(rel string, defaultExtension string) bool {
	return pathtemplate.Matches(path.Base(rel), d.Template(defaultExtension))
}

// Config is one parsed censor document.
type Config struct {
	FileExtension string       `yaml:"file_extension,omitempty"`
	Dirs          []ReplaceDir `yaml:"dirs"`
}

// InsertFile records a discovered file under the first directory entry
// whose path and template accept it, creating a new directory entry when
// none does. The file path is relative to the directory and is stored with
// its template decorations stripped.
func (c *Config) InsertFile(dir, file string, t *Transcript) error {
	for i := range c.Dirs {
		d := &c.Dirs[i]
		if d.Path != dir || !d.Contains(file, c.FileExtension) {
			continue
		}
		stripped, err := pathtemplate.Strip(file, d.Template(c.FileExtension))
		if err != nil {
			return fmt.Errorf("dir %s: %w", dir, err)
		}
		d.Files.Insert(stripped, t)
		return nil
	}

	d := ReplaceDir{Path: dir, Files: NewMapListFiles()}
	stripped, err := pathtemplate.Strip(file, d.Template(c.FileExtension))
	if err != nil {
		return fmt.Errorf("dir %s: %w", dir, err)
	}
	d.Files.Insert(stripped, t)
	c.Dirs = append(c.Dirs, d)
	return nil
}

// Optimize sorts directory entries so synthesized documents are stable
// across runs.
func (c *Config) Optimize() {
	slices.SortStableFunc(c.Dirs, func(a, b ReplaceDir) int {
		if v := strings.Compare(a.Path, b.Path); v != 0 {
			return v
		}
		if v := strings.Compare(a.Prefix, b.Prefix); v != 0 {
			return v
		}
		if v := strings.Compare(a.Suffix, b.Suffix); v != 0 {
			return v
		}
		return strings.Compare(a.FileExtension, b.FileExtension)
	})
}
