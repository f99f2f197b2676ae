package timecode

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Pos is a wall-clock position inside an audio stream with millisecond
// precision. The zero value is the start of the stream.
type Pos struct {
	Hours   uint32
	Minutes uint32
	Seconds uint32
	Millis  uint32
}

// ParsePos parses "[[hours:]minutes:]seconds.milliseconds". The seconds
// component may be empty, so ".500" is half a second past the start of the
// stream. Milliseconds are mandatory.
func ParsePos(s string) (Pos, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Pos{}, fmt.Errorf("invalid position %q: too many ':' separators", s)
	}

	secPart, msPart, found := strings.Cut(parts[len(parts)-1], ".")
	if !found {
		return Pos{}, fmt.Errorf("invalid position %q: missing '.' before milliseconds", s)
	}

	var (
		p   Pos
		err error
	)
	if p.Millis, err = parseComponent(msPart); err != nil {
		return Pos{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	if secPart != "" {
		if p.Seconds, err = parseComponent(secPart); err != nil {
			return Pos{}, fmt.Errorf("invalid position %q: %w", s, err)
		}
	}
	if len(parts) >= 2 {
		if p.Minutes, err = parseComponent(parts[len(parts)-2]); err != nil {
			return Pos{}, fmt.Errorf("invalid position %q: %w", s, err)
		}
	}
	if len(parts) == 3 {
		if p.Hours, err = parseComponent(parts[0]); err != nil {
			return Pos{}, fmt.Errorf("invalid position %q: %w", s, err)
		}
	}
	return p, nil
}

func parseComponent(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// String renders the position in its shortest canonical form, such as
// "0.123", "42.123", "21:42.123", or "12:21:42.123". The output parses back
// to an equal Pos.
func (p Pos) String() string {
	switch {
	case p.Hours > 0:
		return fmt.Sprintf("%d:%02d:%02d.%03d", p.Hours, p.Minutes, p.Seconds, p.Millis)
	case p.Minutes > 0:
		return fmt.Sprintf("%d:%02d.%03d", p.Minutes, p.Seconds, p.Millis)
	default:
		return fmt.Sprintf("%d.%03d", p.Seconds, p.Millis)
	}
}

// AsSamples converts the position to an absolute per-channel sample offset
// at the given rate. The boolean is false when the result does not fit in
// 32 bits. The millisecond term scales by sampleRate/1000 in integer math.
func (p Pos) AsSamples(sampleRate uint32) (uint32, bool) {
	hours, ok := mul32(p.Hours, 3600)
	if !ok {
		return 0, false
	}
	if hours, ok = mul32(hours, sampleRate); !ok {
		return 0, false
	}
	minutes, ok := mul32(p.Minutes, 60)
	if !ok {
		return 0, false
	}
	if minutes, ok = mul32(minutes, sampleRate); !ok {
		return 0, false
	}
	seconds, ok := mul32(p.Seconds, sampleRate)
	if !ok {
		return 0, false
	}
	millis, ok := mul32(p.Millis, sampleRate/1000)
	if !ok {
		return 0, false
	}

	total, ok := add32(hours, minutes)
	if !ok {
		return 0, false
	}
	if total, ok = add32(total, seconds); !ok {
		return 0, false
	}
	return add32(total, millis)
}

func mul32(a, b uint32) (uint32, bool) {
	hi, lo := bits.Mul32(a, b)
	return lo, hi == 0
}

func add32(a, b uint32) (uint32, bool) {
	sum, carry := bits.Add32(a, b, 0)
	return sum, carry == 0
}
