package types

import "time"

// Game configuration constants
const (
	MaxGuesses = 6 // Maximum number of guesses per game
	WordLength = 5 // Length of the word to guess
)

// Guess status values shared by the scorer, handlers, and renderers.
const (
	StatusCorrect = "correct"
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// GuessResult represents a single letter's evaluation.
type GuessResult struct {
	Letter string `json:"letter"`
	Status string `json:"status"`
}

// GameState represents a player's current game session.
type GameState struct {
	Guesses        [][]GuessResult `json:"guesses"`
	CurrentRow     int             `json:"currentRow"`
	GameOver       bool            `json:"gameOver"`
	Won            bool            `json:"won"`
	TargetWord     string          `json:"targetWord"`
	SessionWord    string          `json:"sessionWord"`
	GuessHistory   []string        `json:"guessHistory"`
	LastAccessTime time.Time       `json:"lastAccessTime"`
}
