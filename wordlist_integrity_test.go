package main

import (
	"slices"
	"testing"

	"literumo/internal/filter"
	"literumo/internal/types"
	"literumo/internal/words"
)

// The shipped word lists must survive normalization untouched: every entry
// exactly five letters, no duplicates.
func TestShippedWordLists(t *testing.T) {
	for _, path := range []string{"data/answer_words.txt", "data/accepted_words.txt"} {
		list, err := words.Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if len(list) == 0 {
			t.Fatalf("%s is empty", path)
		}
		for _, w := range list {
			if len(w) != types.WordLength {
				t.Errorf("%s: %q is not %d letters", path, w, types.WordLength)
			}
		}
		if set := words.Set(list); len(set) != len(list) {
			t.Errorf("%s contains duplicates: %d entries, %d unique", path, len(list), len(set))
		}
	}
}

func TestShippedAnswerWordsFilter(t *testing.T) {
	answers, err := words.Load("data/answer_words.txt")
	if err != nil {
		t.Fatal(err)
	}

	clauses, err := filter.Parse("-n tandc 2r 3i 4!ie -c e")
	if err != nil {
		t.Fatal(err)
	}
	res := filter.Apply(answers, clauses)

	want := []string{"BRIBE", "FRISE", "GRIME", "GRIPE", "PRIME", "PRISE", "PRIZE"}
	if !slices.Equal(res.Matches, want) {
		t.Errorf("Matches = %v, want %v", res.Matches, want)
	}
}
