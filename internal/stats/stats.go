// Package stats tallies the words a plan censors.
package stats

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"batchcensor/internal/reconcile"
)

// Count is one censored word and how many replacements target it.
type Count struct {
	Word string
	N    uint64
}

// Collect tallies the words of every process task, case-folded so "Word"
// and "word" count together. Files silenced outright carry no word
// information and are not counted. Results are sorted by word.
func Collect(tasks []reconcile.Task) []Count {
	lower := cases.Lower(language.Und)
	counts := make(map[string]uint64)
	for _, task := range tasks {
		if task.Kind != reconcile.Process {
			continue
		}
		for _, rep := range task.Replace {
			counts[lower.String(rep.Word)]++
		}
	}

	out := make([]Count, 0, len(counts))
	for word, n := range counts {
		out = append(out, Count{Word: word, N: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

// Total sums the replacement counts.
func Total(counts []Count) uint64 {
	var total uint64
	for _, c := range counts {
		total += c.N
	}
	return total
}
