package censor

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"batchcensor/internal/timecode"
)

// Replace orders one word to be overwritten across a range of a file.
type Replace struct {
	Word  string
	Range timecode.Range
}

// String renders the replacement in transcript marker form.
func (r Replace) String() string {
	return fmt.Sprintf("[%s]{%s}", r.Word, r.Range)
}

type replaceDoc struct {
	Word  string `yaml:"word"`
	Range string `yaml:"range"`
}

// UnmarshalYAML reads a {word, range} mapping with the range in its text
// form.
func (r *Replace) UnmarshalYAML(value *yaml.Node) error {
	var doc replaceDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	rng, err := timecode.ParseRange(doc.Range)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	r.Word = doc.Word
	r.Range = rng
	return nil
}

// MarshalYAML writes the range back in its text form.
func (r Replace) MarshalYAML() (any, error) {
	return replaceDoc{Word: r.Word, Range: r.Range.String()}, nil
}
