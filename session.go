package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"literumo/internal/types"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !isValidSessionID(sessionID) {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// getGameState retrieves the GameState for a session, falling back to the
// persisted copy on disk before creating a fresh game.
func (app *App) getGameState(ctx context.Context, sessionID string) *types.GameState {
	app.SessionMutex.RLock()
	state, exists := app.GameSessions[sessionID]
	app.SessionMutex.RUnlock()
	if exists {
		app.SessionMutex.Lock()
		state.LastAccessTime = time.Now()
		app.SessionMutex.Unlock()
		return state
	}

	if loaded, err := loadGameSessionFromFile(app, sessionID); err == nil {
		app.SessionMutex.Lock()
		app.GameSessions[sessionID] = loaded
		app.SessionMutex.Unlock()
		logInfo("Restored session %s from disk", sessionID)
		return loaded
	}

	logInfo("Creating new game for session: %s", sessionID)
	return app.createNewGame(ctx, sessionID)
}

// saveGameState updates the in-memory game state and persists it to disk.
func (app *App) saveGameState(sessionID string, state *types.GameState) {
	app.SessionMutex.Lock()
	app.GameSessions[sessionID] = state
	state.LastAccessTime = time.Now()
	app.SessionMutex.Unlock()

	if err := saveGameSessionToFile(app, sessionID, state); err != nil {
		logWarn("Failed to persist session %s: %v", sessionID, err)
	}
}
