// Package solver ranks candidate guesses by how much they are expected to
// narrow the remaining answer set.
package solver

import (
	"cmp"
	"slices"

	"literumo/internal/game"
	"literumo/internal/types"
)

// GuessScore pairs a guess with its expected number of remaining answers
// after playing it. Lower is better; 1.00 means the guess pins the answer.
type GuessScore struct {
	Guess string  `json:"guess"`
	Score float64 `json:"score"`
}

// RankGuesses scores every candidate guess against the possible answers and
// returns the best ones, at most limit (all when limit <= 0), ordered by
// score ascending with alphabetical tie-break.
//
// A guess partitions the answers by the feedback pattern it would produce.
// Answers in the same bucket stay indistinguishable, so the expected number
// of remaining candidates is the bucket-size-weighted mean of bucket sizes.
// The guess itself is left out of the simulation, matching an exact hit.
// progress, when non-nil, is called after each scored guess.
func RankGuesses(guesses, answers []string, limit int, progress func(done, total int)) ([]GuessScore, error) {
	scores := make([]GuessScore, 0, len(guesses))
	for n, guess := range guesses {
		buckets := make(map[string]int)
		total := 0
		for _, answer := range answers {
			if answer == guess {
				continue
			}
			result, err := game.CheckGuess(guess, answer)
			if err != nil {
				return nil, err
			}
			buckets[patternKey(result)]++
			total++
		}

		score := 0.0
		if total > 0 {
			sum := 0
			for _, size := range buckets {
				sum += size * size
			}
			score = float64(sum) / float64(total)
		}
		scores = append(scores, GuessScore{Guess: guess, Score: score})

		if progress != nil {
			progress(n+1, len(guesses))
		}
	}

	slices.SortFunc(scores, func(a, b GuessScore) int {
		if a.Score != b.Score {
			return cmp.Compare(a.Score, b.Score)
		}
		return cmp.Compare(a.Guess, b.Guess)
	})
	if limit > 0 && len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// patternKey folds a scored guess into a comparable bucket key.
func patternKey(result []types.GuessResult) string {
	key := make([]byte, len(result))
	for i, r := range result {
		switch r.Status {
		case types.StatusCorrect:
			key[i] = 'c'
		case types.StatusPresent:
			key[i] = 'p'
		default:
			key[i] = 'a'
		}
	}
	return string(key)
}
