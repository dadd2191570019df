package filter

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"literumo/internal/types"
)

// LetterCount is one row of a frequency table.
type LetterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Result holds the words matching a clause set plus frequency statistics
// computed only over the matches. Matches are sorted ascending. Letters ranks
// total occurrences across all matches and positions; Positions[i] ranks
// occurrences at position i+1. Both rank by count descending with
// alphabetical tie-break. Empty marks a no-match outcome; the tables are
// present but empty in that case.
type Result struct {
	Matches   []string        `json:"matches"`
	Letters   []LetterCount   `json:"letters"`
	Positions [][]LetterCount `json:"positions"`
	Empty     bool            `json:"empty"`
}

// Apply filters the dictionary down to the words satisfying every clause and
// computes the frequency tables for the match set.
func Apply(dictionary []string, clauses []Clause) Result {
	matches := lo.Filter(dictionary, func(word string, _ int) bool {
		return lo.EveryBy(clauses, func(c Clause) bool { return c.Match(word) })
	})
	slices.Sort(matches)

	res := Result{
		Matches:   matches,
		Empty:     len(matches) == 0,
		Positions: make([][]LetterCount, types.WordLength),
	}

	global := make(map[string]int)
	for _, word := range matches {
		for i := 0; i < types.WordLength; i++ {
			global[string(word[i])]++
		}
	}
	res.Letters = rank(global)

	for pos := range res.Positions {
		counts := make(map[string]int)
		for _, word := range matches {
			counts[string(word[pos])]++
		}
		res.Positions[pos] = rank(counts)
	}

	return res
}

// rank orders a letter->count table by count descending, ties alphabetical.
func rank(counts map[string]int) []LetterCount {
	out := make([]LetterCount, 0, len(counts))
	for letter, count := range counts {
		out = append(out, LetterCount{Letter: letter, Count: count})
	}
	slices.SortFunc(out, func(a, b LetterCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Letter, b.Letter)
	})
	return out
}
