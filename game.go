package main

import (
	"context"
	"crypto/rand"
	"math/big"

	"literumo/internal/game"
	"literumo/internal/types"
)

// getRandomWord returns a random answer word from the loaded word list.
func (app *App) getRandomWord(ctx context.Context) string {
	reqID, _ := ctx.Value(requestIDKey).(string)

	select {
	case <-ctx.Done():
		if reqID != "" {
			logWarn("[request_id=%v] getRandomWord cancelled: %v", reqID, ctx.Err())
		} else {
			logWarn("getRandomWord cancelled: %v", ctx.Err())
		}
		return app.AnswerWords[0]
	default:
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(app.AnswerWords))))
	if err != nil {
		logWarn("Error generating random number: %v, using fallback", err)
		return app.AnswerWords[0]
	}
	return app.AnswerWords[n.Int64()]
}

// getTargetWord returns the session's target word, assigning one if missing.
func (app *App) getTargetWord(ctx context.Context, state *types.GameState) string {
	if state.SessionWord == "" {
		word := app.getRandomWord(ctx)
		state.SessionWord = word
		logWarn("SessionWord was empty, assigned random word: %s", word)
	}
	return state.SessionWord
}

// updateGameState applies a scored guess and logs the outcome.
func (app *App) updateGameState(ctx context.Context, state *types.GameState, guess, targetWord string, result []types.GuessResult, isInvalid bool) {
	reqID, _ := ctx.Value(requestIDKey).(string)

	wasOver := state.GameOver
	game.Update(state, guess, targetWord, result, isInvalid)
	if wasOver || !state.GameOver {
		return
	}

	if state.Won {
		if reqID != "" {
			logInfo("[request_id=%v] Player won! Target word was: %s", reqID, targetWord)
		} else {
			logInfo("Player won! Target word was: %s", targetWord)
		}
	} else {
		if reqID != "" {
			logInfo("[request_id=%v] Player lost. Target word was: %s", reqID, targetWord)
		} else {
			logInfo("Player lost. Target word was: %s", targetWord)
		}
	}
}

// isValidWord returns true if the word is one of the answer words.
func (app *App) isValidWord(word string) bool {
	_, ok := app.WordSet[word]
	return ok
}

// isAcceptedWord returns true if the word is in the accepted guess set.
func (app *App) isAcceptedWord(word string) bool {
	_, ok := app.AcceptedWordSet[word]
	return ok
}

// createNewGame initializes a new GameState for a session and stores it.
func (app *App) createNewGame(ctx context.Context, sessionID string) *types.GameState {
	word := app.getRandomWord(ctx)
	logInfo("New game created for session %s", sessionID)

	state := game.NewGameState(word)
	app.SessionMutex.Lock()
	app.GameSessions[sessionID] = state
	app.SessionMutex.Unlock()
	return state
}
