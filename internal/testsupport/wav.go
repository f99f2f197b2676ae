package testsupport

import (
	"testing"

	"batchcensor/internal/fileutil"
	"batchcensor/internal/wavfile"
)

// WriteWAV encodes interleaved 16-bit samples at path, creating parent
// directories.
func WriteWAV(t testing.TB, path string, rate, channels int, data []int) {
	t.Helper()

	if err := fileutil.EnsureParentDir(path); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	pcm := &wavfile.PCM{Data: data, SampleRate: rate, Channels: channels}
	if err := wavfile.Encode(path, pcm); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// ConstantSamples returns n copies of value, handy for asserting which
// stretches of a file were rewritten.
func ConstantSamples(n, value int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = value
	}
	return data
}
