// Package wavfile decodes and encodes the WAV streams a censoring run
// rewrites. Only 16-bit PCM is handled; anything else is refused with an
// explicit error instead of being transcoded.
package wavfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"batchcensor/internal/fileutil"
)

// ErrNotWAV reports a file the RIFF reader does not recognize.
var ErrNotWAV = errors.New("not a wav file")

// ErrUnsupportedFormat reports sample data the rewriter cannot touch.
var ErrUnsupportedFormat = errors.New("only 16-bit PCM wav is supported")

// PCM holds a fully decoded stream as interleaved samples.
type PCM struct {
	Data       []int
	SampleRate int
	Channels   int
}

// Decode reads path into memory. Non-WAV input returns ErrNotWAV; WAV input
// that is not 16-bit PCM returns ErrUnsupportedFormat.
func Decode(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotWAV)
	}
	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("%s: %w (audio format %d)", path, ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%s: %w (%d-bit)", path, ErrUnsupportedFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &PCM{
		Data:       buf.Data,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}

// Encode writes p to path through a temporary sibling, so the destination
// never holds a truncated stream.
func Encode(path string, p *PCM) error {
	return fileutil.WithAtomicFile(path, func(f *os.File) error {
		enc := wav.NewEncoder(f, p.SampleRate, 16, p.Channels, 1)
		buf := &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
			Data:           p.Data,
			SourceBitDepth: 16,
		}
		if err := enc.Write(buf); err != nil {
			return err
		}
		return enc.Close()
	})
}

// Silent returns a stream with the same format and length as p but every
// sample zeroed.
func (p *PCM) Silent() *PCM {
	return &PCM{
		Data:       make([]int, len(p.Data)),
		SampleRate: p.SampleRate,
		Channels:   p.Channels,
	}
}
