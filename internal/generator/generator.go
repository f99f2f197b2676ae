// Package generator produces the replacement samples written over censored
// ranges.
package generator

import "math"

// Generator produces n interleaved replacement samples for a stream at the
// given rate.
type Generator interface {
	Generate(n, sampleRate int) []int
}

// Silence replaces censored ranges with zero samples.
type Silence struct{}

// Generate returns n zero samples.
func (Silence) Generate(n, _ int) []int {
	return make([]int, n)
}

// Tone replaces censored ranges with a sine tone. Every generated segment
// restarts the wave at phase zero.
type Tone struct {
	Frequency float64
	Amplitude float64
}

// NewTone returns the standard censor beep: 1 kHz at 0.3 amplitude.
func NewTone() Tone {
	return Tone{Frequency: 1000, Amplitude: 0.3}
}

// Generate returns n samples of the tone, truncated to 16-bit magnitudes.
func (t Tone) Generate(n, sampleRate int) []int {
	out := make([]int, n)
	for i := range out {
		mag := float64(i) * t.Frequency * 2 * math.Pi / float64(sampleRate)
		out[i] = int(math.Sin(mag) * t.Amplitude * math.MaxInt16)
	}
	return out
}
