package timecode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOverflow reports that a resolved sample offset does not fit in 32-bit
// arithmetic.
var ErrOverflow = errors.New("sample position overflow")

// ErrStartAfterEnd reports a range whose resolved start lands past its
// resolved end.
var ErrStartAfterEnd = errors.New("range start past end")

// Range selects a span between two optional positions. A nil Start means
// the beginning of the stream and a nil End means the end of it.
type Range struct {
	Start *Pos
	End   *Pos
}

// ParseRange parses "start-end" where start is a position or "^" and end is
// a position or "$".
func ParseRange(s string) (Range, error) {
	startPart, endPart, found := strings.Cut(s, "-")
	if !found {
		return Range{}, fmt.Errorf("invalid range %q: missing '-' separator", s)
	}

	var r Range
	if startPart != "^" {
		p, err := ParsePos(startPart)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		r.Start = &p
	}
	if endPart != "$" {
		p, err := ParsePos(endPart)
		if err != nil {
			return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		r.End = &p
	}
	return r, nil
}

// String renders the range with "^" and "$" for open endpoints.
func (r Range) String() string {
	start, end := "^", "$"
	if r.Start != nil {
		start = r.Start.String()
	}
	if r.End != nil {
		end = r.End.String()
	}
	return start + "-" + end
}

// Resolve converts the range to a half-open interval of interleaved sample
// indexes for a stream with the given rate, channel count, and total
// interleaved length. An open start resolves to zero and an open end to
// total. An explicit end clamps to total; a start past the resolved end is
// an error. Callers treat start == end as an empty interval.
func (r Range) Resolve(sampleRate, channels, total uint32) (uint32, uint32, error) {
	start := uint32(0)
	if r.Start != nil {
		v, err := r.Start.interleaved(sampleRate, channels)
		if err != nil {
			return 0, 0, fmt.Errorf("range %s: start: %w", r, err)
		}
		start = v
	}

	end := total
	if r.End != nil {
		v, err := r.End.interleaved(sampleRate, channels)
		if err != nil {
			return 0, 0, fmt.Errorf("range %s: end: %w", r, err)
		}
		end = v
	}
	if end > total {
		end = total
	}

	if start > end {
		return 0, 0, fmt.Errorf("range %s: %w: sample %d past %d", r, ErrStartAfterEnd, start, end)
	}
	return start, end, nil
}

func (p Pos) interleaved(sampleRate, channels uint32) (uint32, error) {
	v, ok := p.AsSamples(sampleRate)
	if !ok {
		return 0, fmt.Errorf("%w at %d Hz", ErrOverflow, sampleRate)
	}
	v, ok = mul32(v, channels)
	if !ok {
		return 0, fmt.Errorf("%w at %d Hz", ErrOverflow, sampleRate)
	}
	return v, nil
}
