// Package game holds the guess-scoring algorithm and game state transitions.
package game

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/lo"

	"literumo/internal/types"
)

// Aliases for the shared game configuration.
const (
	MaxGuesses = types.MaxGuesses
	WordLength = types.WordLength
)

// ErrInvalidLength is returned when the guess and the secret are not both
// exactly WordLength letters.
var ErrInvalidLength = errors.New("guess and secret must both be 5 letters")

// CheckGuess compares a guess to the secret word and returns per-letter
// results. Exact matches are claimed in a first pass so that duplicate
// letters in the guess are never credited beyond their occurrence count in
// the secret (secret SPEED, guess ERASE: only two E's score).
func CheckGuess(guess, secret string) ([]types.GuessResult, error) {
	if len(guess) != len(secret) || len(secret) != WordLength {
		return nil, ErrInvalidLength
	}

	result := make([]types.GuessResult, WordLength)
	remaining := make(map[byte]int, WordLength)

	for i := 0; i < WordLength; i++ {
		result[i].Letter = string(guess[i])
		if guess[i] == secret[i] {
			result[i].Status = types.StatusCorrect
		} else {
			remaining[secret[i]]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i].Status != "" {
			continue
		}
		if remaining[guess[i]] > 0 {
			remaining[guess[i]]--
			result[i].Status = types.StatusPresent
		} else {
			result[i].Status = types.StatusAbsent
		}
	}

	return result, nil
}

// IsWin reports whether every letter of a result is an exact match.
func IsWin(result []types.GuessResult) bool {
	return len(result) == WordLength && lo.EveryBy(result, func(r types.GuessResult) bool {
		return r.Status == types.StatusCorrect
	})
}

// NewGameState initializes an empty board for the given secret word.
func NewGameState(secret string) *types.GameState {
	guesses := lo.Times(MaxGuesses, func(_ int) []types.GuessResult {
		return lo.Times(WordLength, func(_ int) types.GuessResult { return types.GuessResult{} })
	})
	return &types.GameState{
		Guesses:        guesses,
		CurrentRow:     0,
		GameOver:       false,
		Won:            false,
		TargetWord:     "",
		SessionWord:    secret,
		GuessHistory:   []string{},
		LastAccessTime: time.Now(),
	}
}

// Update records a scored guess on the board, handling win/lose logic.
// Guesses flagged invalid still consume a row but can never win. The target
// word is revealed only once the game is over.
func Update(game *types.GameState, guess, targetWord string, result []types.GuessResult, isInvalid bool) {
	if game.CurrentRow >= MaxGuesses {
		return
	}

	game.Guesses[game.CurrentRow] = result
	game.GuessHistory = append(game.GuessHistory, guess)
	game.LastAccessTime = time.Now()

	if !isInvalid && guess == targetWord {
		game.Won = true
		game.GameOver = true
	} else {
		game.CurrentRow++
		if game.CurrentRow >= MaxGuesses {
			game.GameOver = true
		}
	}

	if game.GameOver {
		game.TargetWord = targetWord
	}
}

// FormatResult renders a scored guess for terminals: (A) for an exact match,
// [B] for present elsewhere, and a bare letter for absent.
func FormatResult(result []types.GuessResult) string {
	var b strings.Builder
	for _, r := range result {
		switch r.Status {
		case types.StatusCorrect:
			b.WriteString("(" + r.Letter + ")")
		case types.StatusPresent:
			b.WriteString("[" + r.Letter + "]")
		default:
			b.WriteString(" " + r.Letter + " ")
		}
	}
	return b.String()
}
