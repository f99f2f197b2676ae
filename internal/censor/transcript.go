package censor

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"batchcensor/internal/timecode"
)

// Transcript is the parsed form of a file's transcript text. Replace holds
// the replacements in marker order. Missing holds bracketed words that
// carry no range; a transcript with any missing word silences its file.
type Transcript struct {
	Text    string
	Replace []Replace
	Missing []string
}

// ParseTranscript scans text for "[word]{range}" and bare "[word]" markers.
// Text outside markers is context only and is not interpreted.
func ParseTranscript(text string) (*Transcript, error) {
	t := &Transcript{Text: text}
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		wordEnd := strings.IndexByte(text[i+1:], ']')
		if wordEnd < 0 {
			return nil, fmt.Errorf("transcript %q: missing word", text)
		}
		word := text[i+1 : i+1+wordEnd]
		i += wordEnd + 1

		if i+1 >= len(text) || text[i+1] != '{' {
			t.Missing = append(t.Missing, word)
			continue
		}
		rangeEnd := strings.IndexByte(text[i+2:], '}')
		if rangeEnd < 0 {
			return nil, fmt.Errorf("transcript %q: missing range after %q", text, word)
		}
		rng, err := timecode.ParseRange(text[i+2 : i+2+rangeEnd])
		if err != nil {
			return nil, fmt.Errorf("transcript %q: bad range: %w", text, err)
		}
		t.Replace = append(t.Replace, Replace{Word: word, Range: rng})
		i += rangeEnd + 2
	}
	return t, nil
}

// Silences reports whether the transcript forces its whole file to be
// silenced because at least one marker has no usable range.
func (t *Transcript) Silences() bool {
	return t != nil && len(t.Missing) > 0
}

// UnmarshalYAML parses a transcript from its scalar text form.
func (t *Transcript) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseTranscript(text)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = *parsed
	return nil
}

// MarshalYAML writes the original transcript text.
func (t *Transcript) MarshalYAML() (any, error) {
	return t.Text, nil
}
