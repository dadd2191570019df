package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome      = "/"
	RouteNewGame   = "/new-game"
	RouteRetryWord = "/retry-word"
	RouteGuess     = "/guess"
	RouteGameState = "/game-state"
	RouteFilter    = "/filter"
	RouteHealthz   = "/healthz"
)

// Error message constants
const (
	ErrorGameOver        = "game is over"
	ErrorInvalidLength   = "word must be 5 letters"
	ErrorNoMoreGuesses   = "no more guesses allowed"
	ErrorWordNotAccepted = "word not recognized"
	ErrorDuplicateGuess  = "word already guessed"
)

// Context key constants
type contextKey string

const (
	requestIDKey contextKey = "request_id"
)
