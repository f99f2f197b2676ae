package timecode_test

import (
	"errors"
	"testing"

	"batchcensor/internal/timecode"
)

func TestParseRange(t *testing.T) {
	full, err := timecode.ParseRange("1.500-2.000")
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	if full.Start == nil || full.End == nil {
		t.Fatalf("expected both endpoints, got %+v", full)
	}
	if *full.Start != (timecode.Pos{Seconds: 1, Millis: 500}) {
		t.Fatalf("start = %+v", *full.Start)
	}
	if *full.End != (timecode.Pos{Seconds: 2}) {
		t.Fatalf("end = %+v", *full.End)
	}

	open, err := timecode.ParseRange("^-$")
	if err != nil {
		t.Fatalf("ParseRange(\"^-$\") returned error: %v", err)
	}
	if open.Start != nil || open.End != nil {
		t.Fatalf("expected open endpoints, got %+v", open)
	}

	tail, err := timecode.ParseRange("21:42.123-$")
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	if tail.Start == nil || tail.End != nil {
		t.Fatalf("expected explicit start and open end, got %+v", tail)
	}
}

func TestParseRangeRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"1.500",
		"-",
		"$-^",
		"^-x",
		"1.500-2",
	}
	for _, input := range inputs {
		if _, err := timecode.ParseRange(input); err == nil {
			t.Fatalf("ParseRange(%q) succeeded, want error", input)
		}
	}
}

func TestRangeString(t *testing.T) {
	inputs := []string{"^-$", "1.500-$", "^-21:42.123", "0.100-0.200"}
	for _, input := range inputs {
		r, err := timecode.ParseRange(input)
		if err != nil {
			t.Fatalf("ParseRange(%q) returned error: %v", input, err)
		}
		if got := r.String(); got != input {
			t.Fatalf("String() = %q, want %q", got, input)
		}
	}
}

func TestRangeResolve(t *testing.T) {
	pos := func(seconds uint32) *timecode.Pos {
		return &timecode.Pos{Seconds: seconds}
	}

	cases := []struct {
		name      string
		r         timecode.Range
		total     uint32
		wantStart uint32
		wantEnd   uint32
	}{
		{"open", timecode.Range{}, 10000, 0, 10000},
		{"explicit", timecode.Range{Start: pos(1), End: pos(2)}, 10000, 2000, 4000},
		{"openStart", timecode.Range{End: pos(2)}, 10000, 0, 4000},
		{"openEnd", timecode.Range{Start: pos(4)}, 10000, 8000, 10000},
		{"endClampsToTotal", timecode.Range{Start: pos(1), End: pos(100)}, 10000, 2000, 10000},
		{"empty", timecode.Range{Start: pos(3), End: pos(3)}, 10000, 6000, 6000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := tc.r.Resolve(1000, 2, tc.total)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("Resolve = (%d, %d), want (%d, %d)", start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestRangeResolveStartPastEnd(t *testing.T) {
	start := timecode.Pos{Seconds: 6}
	_, _, err := timecode.Range{Start: &start}.Resolve(1000, 2, 10000)
	if !errors.Is(err, timecode.ErrStartAfterEnd) {
		t.Fatalf("expected ErrStartAfterEnd, got %v", err)
	}

	end := timecode.Pos{Seconds: 1}
	_, _, err = timecode.Range{Start: &start, End: &end}.Resolve(1000, 2, 10000)
	if !errors.Is(err, timecode.ErrStartAfterEnd) {
		t.Fatalf("expected ErrStartAfterEnd, got %v", err)
	}
}

func TestRangeResolveOverflow(t *testing.T) {
	start := timecode.Pos{Hours: 1 << 30}
	_, _, err := timecode.Range{Start: &start}.Resolve(48000, 2, 10000)
	if !errors.Is(err, timecode.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}
