package runner

import (
	"fmt"
	"os"

	"batchcensor/internal/fileutil"
	"batchcensor/internal/generator"
	"batchcensor/internal/reconcile"
	"batchcensor/internal/wavfile"
)

// runCopy duplicates the source. An existing destination counts as already
// up to date.
func runCopy(task reconcile.Task) error {
	if destExists(task.Dest) {
		return nil
	}
	if err := fileutil.EnsureParentDir(task.Dest); err != nil {
		return err
	}
	return fileutil.CopyFileVerified(task.Source, task.Dest)
}

// runProcess rewrites every replacement range of the source with generated
// samples and encodes the result at the destination.
func runProcess(task reconcile.Task, gen generator.Generator) error {
	pcm, err := wavfile.Decode(task.Source)
	if err != nil {
		return err
	}

	total := uint32(len(pcm.Data))
	for _, rep := range task.Replace {
		start, end, err := rep.Range.Resolve(uint32(pcm.SampleRate), uint32(pcm.Channels), total)
		if err != nil {
			return fmt.Errorf("%s: %w", rep, err)
		}
		if start == end {
			continue
		}
		copy(pcm.Data[start:end], gen.Generate(int(end-start), pcm.SampleRate))
	}
	return wavfile.Encode(task.Dest, pcm)
}

// runSilence writes a zeroed stream of the source's format and duration. An
// existing destination is an override and is never re-silenced.
func runSilence(task reconcile.Task) error {
	if destExists(task.Dest) {
		return nil
	}
	pcm, err := wavfile.Decode(task.Source)
	if err != nil {
		return err
	}
	return wavfile.Encode(task.Dest, pcm.Silent())
}

func destExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
