package generator

import "testing"

func TestSilenceGenerate(t *testing.T) {
	samples := Silence{}.Generate(16, 44100)
	if len(samples) != 16 {
		t.Fatalf("len = %d, want 16", len(samples))
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d = %d, want 0", i, s)
		}
	}
}

func TestToneGenerate(t *testing.T) {
	// 1 kHz at 8 kHz puts a full period across eight samples, with peaks at
	// the quarter points.
	samples := NewTone().Generate(8, 8000)
	if len(samples) != 8 {
		t.Fatalf("len = %d, want 8", len(samples))
	}

	if samples[0] != 0 {
		t.Fatalf("sample 0 = %d, want 0 (phase restarts per segment)", samples[0])
	}
	if samples[2] != 9830 {
		t.Fatalf("sample 2 = %d, want 9830", samples[2])
	}
	if samples[6] != -9830 {
		t.Fatalf("sample 6 = %d, want -9830", samples[6])
	}
	for i, s := range samples {
		if s > 9830 || s < -9830 {
			t.Fatalf("sample %d = %d exceeds amplitude bound", i, s)
		}
	}
}

func TestToneGenerateRestartsPhase(t *testing.T) {
	tone := NewTone()
	first := tone.Generate(4, 8000)
	second := tone.Generate(4, 8000)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("segment sample %d differs: %d vs %d", i, first[i], second[i])
		}
	}
}
