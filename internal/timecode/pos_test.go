package timecode_test

import (
	"testing"

	"batchcensor/internal/timecode"
)

func TestParsePos(t *testing.T) {
	cases := []struct {
		input string
		want  timecode.Pos
	}{
		{".123", timecode.Pos{Millis: 123}},
		{"42.123", timecode.Pos{Seconds: 42, Millis: 123}},
		{"21:42.123", timecode.Pos{Minutes: 21, Seconds: 42, Millis: 123}},
		{"12:21:42.123", timecode.Pos{Hours: 12, Minutes: 21, Seconds: 42, Millis: 123}},
		{"0.000", timecode.Pos{}},
		{"90.001", timecode.Pos{Seconds: 90, Millis: 1}},
		{"1:00.000", timecode.Pos{Minutes: 1}},
	}
	for _, tc := range cases {
		got, err := timecode.ParsePos(tc.input)
		if err != nil {
			t.Fatalf("ParsePos(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePos(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParsePosRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"42",
		"12:34",
		"1:2:3:4.5",
		"x.123",
		"1.x",
		"1.",
		"-1.000",
		"1:-2.000",
		"1..000",
	}
	for _, input := range inputs {
		if _, err := timecode.ParsePos(input); err == nil {
			t.Fatalf("ParsePos(%q) succeeded, want error", input)
		}
	}
}

func TestPosString(t *testing.T) {
	cases := []struct {
		pos  timecode.Pos
		want string
	}{
		{timecode.Pos{Millis: 123}, "0.123"},
		{timecode.Pos{Seconds: 42, Millis: 123}, "42.123"},
		{timecode.Pos{Minutes: 21, Seconds: 42, Millis: 123}, "21:42.123"},
		{timecode.Pos{Hours: 12, Minutes: 21, Seconds: 42, Millis: 123}, "12:21:42.123"},
		{timecode.Pos{Minutes: 1, Millis: 5}, "1:00.005"},
	}
	for _, tc := range cases {
		if got := tc.pos.String(); got != tc.want {
			t.Fatalf("Pos%+v.String() = %q, want %q", tc.pos, got, tc.want)
		}
		back, err := timecode.ParsePos(tc.want)
		if err != nil {
			t.Fatalf("ParsePos(%q) returned error: %v", tc.want, err)
		}
		if back != tc.pos {
			t.Fatalf("ParsePos(%q) = %+v, want %+v", tc.want, back, tc.pos)
		}
	}
}

func TestPosAsSamples(t *testing.T) {
	cases := []struct {
		pos  timecode.Pos
		rate uint32
		want uint32
	}{
		{timecode.Pos{}, 44100, 0},
		{timecode.Pos{Seconds: 1}, 44100, 44100},
		{timecode.Pos{Seconds: 1, Millis: 500}, 44100, 44100 + 500*44},
		{timecode.Pos{Minutes: 2}, 48000, 2 * 60 * 48000},
		{timecode.Pos{Hours: 1}, 8000, 3600 * 8000},
		{timecode.Pos{Hours: 1, Minutes: 2, Seconds: 3, Millis: 4}, 1000, 3600*1000 + 2*60*1000 + 3*1000 + 4},
	}
	for _, tc := range cases {
		got, ok := tc.pos.AsSamples(tc.rate)
		if !ok {
			t.Fatalf("Pos%+v.AsSamples(%d) overflowed", tc.pos, tc.rate)
		}
		if got != tc.want {
			t.Fatalf("Pos%+v.AsSamples(%d) = %d, want %d", tc.pos, tc.rate, got, tc.want)
		}
	}
}

func TestPosAsSamplesOverflow(t *testing.T) {
	cases := []timecode.Pos{
		{Hours: 1 << 31},
		{Hours: 2000, Minutes: 0, Seconds: 0, Millis: 0},
		{Seconds: 1 << 31},
	}
	for _, pos := range cases {
		if got, ok := pos.AsSamples(48000); ok {
			t.Fatalf("Pos%+v.AsSamples(48000) = %d, want overflow", pos, got)
		}
	}
}
