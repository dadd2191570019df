package main

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"literumo/internal/filter"
	"literumo/internal/game"
	"literumo/internal/solver"
	"literumo/internal/types"
)

// homeHandler describes the service for API discovery.
func (app *App) homeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "literumo",
		"message": "Guess the 5-letter word!",
		"routes": gin.H{
			"game_state": RouteGameState,
			"new_game":   RouteNewGame,
			"guess":      RouteGuess,
			"retry_word": RouteRetryWord,
			"filter":     RouteFilter,
			"health":     RouteHealthz,
		},
	})
}

// gameStateHandler returns the current board for the session.
func (app *App) gameStateHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	state := app.getGameState(ctx, sessionID)
	c.JSON(http.StatusOK, gin.H{"game": state})
}

// newGameHandler starts a new game session, optionally resetting the session ID.
func (app *App) newGameHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	logInfo("Creating new game for session: %s", sessionID)

	app.SessionMutex.Lock()
	delete(app.GameSessions, sessionID)
	app.SessionMutex.Unlock()
	logInfo("Cleared old session data for: %s", sessionID)

	if c.Query("reset") == "1" {
		secure := app.IsProduction
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)

		newSessionID := uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, newSessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session ID: %s", newSessionID)
		sessionID = newSessionID
	}

	state := app.createNewGame(ctx, sessionID)
	c.JSON(http.StatusOK, gin.H{"game": state})
}

// guessHandler processes a guess submission, validates it, and updates the
// game state. Rejections carry the reason in the error field.
func (app *App) guessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	state := app.getGameState(ctx, sessionID)

	if state.GameOver {
		logWarn("Session %s attempted guess on completed game", sessionID)
		c.JSON(http.StatusConflict, gin.H{"error": ErrorGameOver, "game": state})
		return
	}

	guess := normalizeGuess(c.PostForm("guess"))
	logInfo("Session %s guessed: %s (attempt %d/%d)", sessionID, guess, state.CurrentRow+1, types.MaxGuesses)

	if len(guess) != types.WordLength {
		logWarn("Session %s submitted invalid length guess: %s (%d letters)", sessionID, guess, len(guess))
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidLength, "game": state})
		return
	}
	if !app.isAcceptedWord(guess) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorWordNotAccepted, "game": state})
		return
	}
	if slices.Contains(state.GuessHistory, guess) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorDuplicateGuess, "game": state})
		return
	}
	if state.CurrentRow >= types.MaxGuesses {
		logWarn("Session %s attempted guess after max guesses reached", sessionID)
		c.JSON(http.StatusConflict, gin.H{"error": ErrorNoMoreGuesses, "game": state})
		return
	}

	targetWord := app.getTargetWord(ctx, state)
	isInvalid := !app.isValidWord(guess)
	result, err := game.CheckGuess(guess, targetWord)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidLength, "game": state})
		return
	}

	app.updateGameState(ctx, state, guess, targetWord, result, isInvalid)
	app.saveGameState(sessionID, state)

	c.JSON(http.StatusOK, gin.H{
		"game":     state,
		"result":   result,
		"rendered": game.FormatResult(result),
	})
}

// retryWordHandler resets the board for the current session but keeps the
// same word.
func (app *App) retryWordHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)

	app.SessionMutex.Lock()
	state, exists := app.GameSessions[sessionID]
	if !exists {
		app.SessionMutex.Unlock()
		state = app.createNewGame(ctx, sessionID)
		c.JSON(http.StatusOK, gin.H{"game": state})
		return
	}
	fresh := game.NewGameState(state.SessionWord)
	app.GameSessions[sessionID] = fresh
	app.SessionMutex.Unlock()

	c.JSON(http.StatusOK, gin.H{"game": fresh})
}

// filterRequest is the body of POST /filter. Rank > 0 additionally ranks the
// best next guesses over the match set.
type filterRequest struct {
	Spec     string `json:"spec" binding:"required"`
	Expanded bool   `json:"expanded"`
	Rank     int    `json:"rank"`
}

// filterHandler parses a filter spec, applies it to the dictionary, and
// returns matches plus frequency statistics. A spec matching nothing is a
// normal response with empty tables, not an error.
func (app *App) filterHandler(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter spec is required"})
		return
	}

	clauses, err := filter.Parse(req.Spec)
	if err != nil {
		logWarn("Rejected filter spec %q: %v", req.Spec, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dictionary := app.AnswerWords
	if req.Expanded {
		dictionary = app.AcceptedWords
	}
	res := filter.Apply(dictionary, clauses)
	logInfo("Filter spec %q matched %d of %d words", req.Spec, len(res.Matches), len(dictionary))

	payload := gin.H{"result": res}
	if req.Rank > 0 && !res.Empty {
		ranked, err := solver.RankGuesses(dictionary, res.Matches, req.Rank, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "guess ranking failed"})
			return
		}
		payload["guesses"] = ranked
	}
	c.JSON(http.StatusOK, payload)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"env":            map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"answer_words":   len(app.AnswerWords),
		"accepted_words": len(app.AcceptedWordSet),
		"uptime":         formatUptime(uptime),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

// normalizeGuess trims and uppercases a guess string for comparison.
func normalizeGuess(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}
