package solver

import (
	"testing"
)

func TestRankGuesses(t *testing.T) {
	answers := []string{"APPLE", "AMPLE", "ANKLE"}
	guesses := []string{"ZZZZZ", "APPLE"}

	ranked, err := RankGuesses(guesses, answers, 0, nil)
	if err != nil {
		t.Fatalf("RankGuesses returned error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("got %d scores, want 2", len(ranked))
	}

	// APPLE splits AMPLE and ANKLE into distinct patterns and skips itself:
	// two buckets of one, expected remaining 1.00. ZZZZZ leaves all three
	// answers in one bucket.
	if ranked[0].Guess != "APPLE" {
		t.Errorf("best guess = %s, want APPLE", ranked[0].Guess)
	}
	if ranked[0].Score != 1.0 {
		t.Errorf("APPLE score = %.2f, want 1.00", ranked[0].Score)
	}
	if ranked[1].Guess != "ZZZZZ" || ranked[1].Score != 3.0 {
		t.Errorf("ZZZZZ score = %.2f, want 3.00", ranked[1].Score)
	}
}

func TestRankGuesses_Limit(t *testing.T) {
	answers := []string{"APPLE", "AMPLE"}
	guesses := []string{"APPLE", "AMPLE", "ANKLE", "ZZZZZ"}

	ranked, err := RankGuesses(guesses, answers, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 2 {
		t.Errorf("got %d scores, want limit of 2", len(ranked))
	}
}

func TestRankGuesses_TieBreakAlphabetical(t *testing.T) {
	// Both guesses leave both answers in one bucket, so they tie and order
	// falls back to the guess word.
	answers := []string{"APPLE", "AMPLE"}
	guesses := []string{"ZZZZZ", "QQQQQ"}

	ranked, err := RankGuesses(guesses, answers, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ranked[0].Guess != "QQQQQ" || ranked[1].Guess != "ZZZZZ" {
		t.Errorf("tie order = %s, %s; want QQQQQ, ZZZZZ", ranked[0].Guess, ranked[1].Guess)
	}
}

func TestRankGuesses_Progress(t *testing.T) {
	answers := []string{"APPLE", "AMPLE"}
	guesses := []string{"APPLE", "AMPLE", "ANKLE"}

	calls := 0
	_, err := RankGuesses(guesses, answers, 0, func(done, total int) {
		calls++
		if total != len(guesses) {
			t.Errorf("progress total = %d, want %d", total, len(guesses))
		}
		if done != calls {
			t.Errorf("progress done = %d, want %d", done, calls)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != len(guesses) {
		t.Errorf("progress called %d times, want %d", calls, len(guesses))
	}
}

func TestRankGuesses_InvalidWordLength(t *testing.T) {
	if _, err := RankGuesses([]string{"TOOLONG"}, []string{"APPLE"}, 0, nil); err == nil {
		t.Error("expected error for a malformed guess word")
	}
}
