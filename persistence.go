package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"literumo/internal/types"
)

// isValidSessionID returns true for well-formed UUID session IDs. Anything
// else is rejected before it can reach the filesystem.
func isValidSessionID(sessionID string) bool {
	if len(sessionID) != 36 {
		return false
	}
	_, err := uuid.Parse(sessionID)
	return err == nil
}

// getSecureSessionPath maps a session ID to its file path, refusing IDs that
// are not UUIDs or that would escape the sessions directory.
func getSecureSessionPath(dir, sessionID string) (string, error) {
	if !isValidSessionID(sessionID) {
		return "", fmt.Errorf("invalid session ID: %q", sessionID)
	}
	path := filepath.Join(dir, sessionID+".json")
	if filepath.Dir(path) != filepath.Clean(dir) {
		return "", fmt.Errorf("session path escapes %s: %q", dir, sessionID)
	}
	return path, nil
}

// saveGameSessionToFile persists a game session to disk. Declared as a var so
// tests can stub it out.
var saveGameSessionToFile = func(app *App, sessionID string, state *types.GameState) error {
	path, err := getSecureSessionPath(app.SessionDir, sessionID)
	if err != nil {
		logWarn("Skipping save: %v", err)
		return nil
	}

	if err := os.MkdirAll(app.SessionDir, 0755); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	state.LastAccessTime = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", sessionID, err)
	}
	return os.WriteFile(path, data, 0644)
}

// loadGameSessionFromFile loads a game session from disk, discarding stale or
// corrupted files.
var loadGameSessionFromFile = func(app *App, sessionID string) (*types.GameState, error) {
	path, err := getSecureSessionPath(app.SessionDir, sessionID)
	if err != nil {
		return nil, os.ErrNotExist
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if age := time.Since(info.ModTime()); age > app.SessionTimeout {
		logInfo("Session file is too old (%v, max: %v), removing: %s", age, app.SessionTimeout, path)
		os.Remove(path)
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var state types.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		logWarn("Session file %s is corrupted, removing: %v", path, err)
		os.Remove(path)
		return nil, os.ErrNotExist
	}

	if len(state.Guesses) != types.MaxGuesses || state.SessionWord == "" {
		logWarn("Session file %s has invalid structure, removing", path)
		os.Remove(path)
		return nil, os.ErrNotExist
	}

	state.LastAccessTime = time.Now()
	return &state, nil
}

// cleanupOldSessions removes expired sessions from memory and session files
// older than maxAge from disk.
var cleanupOldSessions = func(app *App, maxAge time.Duration) error {
	now := time.Now()

	app.SessionMutex.Lock()
	removedInMemory := 0
	for sessionID, state := range app.GameSessions {
		if state.LastAccessTime.IsZero() || now.Sub(state.LastAccessTime) > maxAge {
			delete(app.GameSessions, sessionID)
			removedInMemory++
		}
	}
	app.SessionMutex.Unlock()

	entries, err := os.ReadDir(app.SessionDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read sessions directory: %w", err)
	}

	cutoff := now.Add(-maxAge)
	removedFiles := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logWarn("Failed to stat session file %s: %v", entry.Name(), err)
			continue
		}
		if info.ModTime().Before(cutoff) {
			path := filepath.Join(app.SessionDir, entry.Name())
			if err := os.Remove(path); err != nil {
				logWarn("Failed to remove old session file %s: %v", path, err)
			} else {
				removedFiles++
			}
		}
	}

	logInfo("Session cleanup completed: removed %d in-memory, %d files", removedInMemory, removedFiles)
	return nil
}
