package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"literumo/internal/types"
	"literumo/internal/words"
)

// Config collects the environment-driven settings for an App.
type Config struct {
	AnswerWordsPath   string
	AcceptedWordsPath string
	SessionDir        string
	SessionTimeout    time.Duration
	CookieMaxAge      time.Duration
	RateLimitRPS      int
	RateLimitBurst    int
	IsProduction      bool
}

// App owns the immutable dictionary snapshot, the session store, and the
// per-client rate limiters. It is created once at startup and passed to the
// handlers; nothing mutates the word lists after construction.
type App struct {
	Config

	AnswerWords     []string
	AcceptedWords   []string
	WordSet         map[string]struct{}
	AcceptedWordSet map[string]struct{}

	GameSessions map[string]*types.GameState
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	StartTime time.Time
}

// newApp loads both word lists and assembles the application state. The
// accepted set always includes the answer words so every answer is guessable.
func newApp(cfg Config) (*App, error) {
	answers, err := words.Load(cfg.AnswerWordsPath)
	if err != nil {
		return nil, err
	}
	accepted, err := words.Load(cfg.AcceptedWordsPath)
	if err != nil {
		return nil, err
	}
	accepted = words.Normalize(append(accepted, answers...))

	app := &App{
		Config:          cfg,
		AnswerWords:     answers,
		AcceptedWords:   accepted,
		WordSet:         words.Set(answers),
		AcceptedWordSet: words.Set(accepted),
		GameSessions:    make(map[string]*types.GameState),
		LimiterMap:      make(map[string]*rate.Limiter),
		StartTime:       time.Now(),
	}
	return app, nil
}
