package reconcile

import (
	"fmt"

	"batchcensor/internal/censor"
)

// TaskKind classifies what a task does to its source file.
type TaskKind int

const (
	// Copy duplicates the source byte for byte.
	Copy TaskKind = iota
	// Process rewrites the ranges named by Replace entries.
	Process
	// Silence writes a zeroed stream of the source's duration.
	Silence
)

// String returns the lowercase verb used in task descriptions and logs.
func (k TaskKind) String() string {
	switch k {
	case Copy:
		return "copy"
	case Process:
		return "process"
	case Silence:
		return "silence"
	default:
		return fmt.Sprintf("taskkind(%d)", int(k))
	}
}

// Task is one independent unit of work: derive Dest from Source. Replace is
// populated only for Process tasks.
type Task struct {
	Kind    TaskKind
	Source  string
	Dest    string
	Replace []censor.Replace
}

// String renders the task the way it appears in logs and error chains.
func (t Task) String() string {
	return fmt.Sprintf("%s %s -> %s", t.Kind, t.Source, t.Dest)
}
