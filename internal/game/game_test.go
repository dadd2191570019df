package game

import (
	"errors"
	"testing"

	"literumo/internal/types"
)

func TestCheckGuess(t *testing.T) {
	tests := []struct {
		secret  string
		guess   string
		want    []string
		comment string
	}{
		{
			secret:  "PRIZE",
			guess:   "PRIZE",
			want:    []string{types.StatusCorrect, types.StatusCorrect, types.StatusCorrect, types.StatusCorrect, types.StatusCorrect},
			comment: "All correct.",
		},
		{
			secret:  "TRAIN",
			guess:   "CRIED",
			want:    []string{types.StatusAbsent, types.StatusCorrect, types.StatusPresent, types.StatusAbsent, types.StatusAbsent},
			comment: "R exact, I misplaced, C/E/D absent.",
		},
		{
			secret:  "APPLE",
			guess:   "ZZZZZ",
			want:    []string{types.StatusAbsent, types.StatusAbsent, types.StatusAbsent, types.StatusAbsent, types.StatusAbsent},
			comment: "All absent.",
		},
		{
			secret:  "SPEED",
			guess:   "ERASE",
			want:    []string{types.StatusPresent, types.StatusAbsent, types.StatusAbsent, types.StatusPresent, types.StatusPresent},
			comment: "Only two of three E's score; S misplaced.",
		},
		{
			secret:  "APPLE",
			guess:   "ALLEY",
			want:    []string{types.StatusCorrect, types.StatusPresent, types.StatusAbsent, types.StatusPresent, types.StatusAbsent},
			comment: "Second L exceeds the single L in the secret.",
		},
	}

	for _, tt := range tests {
		got, err := CheckGuess(tt.guess, tt.secret)
		if err != nil {
			t.Fatalf("CheckGuess(%s, %s) returned error: %v", tt.guess, tt.secret, err)
		}
		if len(got) != WordLength {
			t.Fatalf("CheckGuess(%s, %s) returned %d results, want %d", tt.guess, tt.secret, len(got), WordLength)
		}
		for i := range got {
			if got[i].Letter != string(tt.guess[i]) {
				t.Errorf("%s: pos %d letter = %q, want %q", tt.comment, i, got[i].Letter, string(tt.guess[i]))
			}
			if got[i].Status != tt.want[i] {
				t.Errorf("%s: guess %s vs %s, pos %d: got %s, want %s", tt.comment, tt.guess, tt.secret, i, got[i].Status, tt.want[i])
			}
		}
	}
}

func TestCheckGuess_InvalidLength(t *testing.T) {
	for _, pair := range [][2]string{
		{"", "APPLE"},
		{"AB", "APPLE"},
		{"APPLES", "APPLE"},
		{"ABCDEF", "ABCDEF"},
	} {
		if _, err := CheckGuess(pair[0], pair[1]); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("CheckGuess(%q, %q) error = %v, want ErrInvalidLength", pair[0], pair[1], err)
		}
	}
}

// Credit for a letter (exact plus present) never exceeds its occurrence count
// in the secret.
func TestCheckGuess_DuplicateCredit(t *testing.T) {
	pairs := [][2]string{
		{"SPEED", "ERASE"},
		{"SPEED", "EERIE"},
		{"APPLE", "ALLEY"},
		{"BRIBE", "BOBBY"},
		{"LEVEL", "EAGLE"},
	}
	for _, pair := range pairs {
		secret, guess := pair[0], pair[1]
		result, err := CheckGuess(guess, secret)
		if err != nil {
			t.Fatalf("CheckGuess(%s, %s): %v", guess, secret, err)
		}
		for letter := byte('A'); letter <= 'Z'; letter++ {
			occurrences := 0
			for i := 0; i < len(secret); i++ {
				if secret[i] == letter {
					occurrences++
				}
			}
			credited := 0
			for i, r := range result {
				if guess[i] == letter && r.Status != types.StatusAbsent {
					credited++
				}
			}
			if credited > occurrences {
				t.Errorf("secret %s guess %s: letter %c credited %d times, only %d in secret",
					secret, guess, letter, credited, occurrences)
			}
		}
	}
}

func TestIsWin(t *testing.T) {
	win, err := CheckGuess("PRIZE", "PRIZE")
	if err != nil {
		t.Fatal(err)
	}
	if !IsWin(win) {
		t.Error("IsWin = false for an all-correct result")
	}
	lose, err := CheckGuess("CRIED", "TRAIN")
	if err != nil {
		t.Fatal(err)
	}
	if IsWin(lose) {
		t.Error("IsWin = true for a mixed result")
	}
	if IsWin(nil) {
		t.Error("IsWin = true for an empty result")
	}
}

func TestNewGameState(t *testing.T) {
	state := NewGameState("PRIZE")
	if state.SessionWord != "PRIZE" {
		t.Errorf("SessionWord = %q, want PRIZE", state.SessionWord)
	}
	if len(state.Guesses) != MaxGuesses {
		t.Errorf("len(Guesses) = %d, want %d", len(state.Guesses), MaxGuesses)
	}
	for i, row := range state.Guesses {
		if len(row) != WordLength {
			t.Errorf("row %d has %d cells, want %d", i, len(row), WordLength)
		}
	}
	if state.TargetWord != "" {
		t.Error("TargetWord must stay hidden until the game ends")
	}
	if state.LastAccessTime.IsZero() {
		t.Error("LastAccessTime not set")
	}
}

func TestUpdate_Win(t *testing.T) {
	state := NewGameState("PRIZE")
	result, _ := CheckGuess("PRIZE", "PRIZE")
	Update(state, "PRIZE", "PRIZE", result, false)

	if !state.Won || !state.GameOver {
		t.Errorf("win path: Won=%v, GameOver=%v", state.Won, state.GameOver)
	}
	if state.TargetWord != "PRIZE" {
		t.Errorf("TargetWord = %q, want PRIZE revealed on win", state.TargetWord)
	}
	if len(state.GuessHistory) != 1 || state.GuessHistory[0] != "PRIZE" {
		t.Errorf("GuessHistory = %v", state.GuessHistory)
	}
}

func TestUpdate_Lose(t *testing.T) {
	state := NewGameState("PRIZE")
	result, _ := CheckGuess("TRAIN", "PRIZE")
	for i := 0; i < MaxGuesses; i++ {
		Update(state, "TRAIN", "PRIZE", result, false)
	}
	if !state.GameOver || state.Won {
		t.Errorf("lose path: GameOver=%v, Won=%v", state.GameOver, state.Won)
	}
	if state.TargetWord != "PRIZE" {
		t.Error("TargetWord should be revealed on loss")
	}
	if len(state.GuessHistory) != MaxGuesses {
		t.Errorf("GuessHistory length = %d, want %d", len(state.GuessHistory), MaxGuesses)
	}

	// Further updates after the board is full are ignored.
	Update(state, "TRAIN", "PRIZE", result, false)
	if len(state.GuessHistory) != MaxGuesses {
		t.Error("Update after exhaustion extended the history")
	}
}

func TestUpdate_InvalidGuessCannotWin(t *testing.T) {
	state := NewGameState("PRIZE")
	result, _ := CheckGuess("PRIZE", "PRIZE")
	Update(state, "PRIZE", "PRIZE", result, true)
	if state.Won {
		t.Error("invalid guess must not win even when it matches the target")
	}
	if state.CurrentRow != 1 {
		t.Errorf("CurrentRow = %d, want 1 (invalid guess still consumes a row)", state.CurrentRow)
	}
}

func TestFormatResult(t *testing.T) {
	result, err := CheckGuess("CRIED", "TRAIN")
	if err != nil {
		t.Fatal(err)
	}
	got := FormatResult(result)
	want := " C (R)[I] E  D "
	if got != want {
		t.Errorf("FormatResult = %q, want %q", got, want)
	}
}
