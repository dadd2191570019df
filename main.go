package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
)

func main() {
	_ = godotenv.Load()

	cfg := Config{
		AnswerWordsPath:   getEnvStr("ANSWER_WORDS", "data/answer_words.txt"),
		AcceptedWordsPath: getEnvStr("ACCEPTED_WORDS", "data/accepted_words.txt"),
		SessionDir:        getEnvStr("SESSION_DIR", "data/sessions"),
		SessionTimeout:    getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:      getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		RateLimitRPS:      getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 10),
		IsProduction:      os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
	}
	logInfo("Starting literumo in %s mode", map[bool]string{true: "production", false: "development"}[cfg.IsProduction])

	app, err := newApp(cfg)
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d answer words, %d accepted words", len(app.AnswerWords), len(app.AcceptedWordSet))

	router := app.setupRouter()

	stopCleanup := make(chan struct{})
	go app.sessionCleanupScheduler(stopCleanup)
	defer close(stopCleanup)

	startServer(router)
}

// setupRouter wires middleware and routes onto a Gin engine.
func (app *App) setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware())
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteHome, app.homeHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.GET(RouteNewGame, app.newGameHandler)
	router.POST(RouteNewGame, app.rateLimitMiddleware(), app.newGameHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.POST(RouteRetryWord, app.rateLimitMiddleware(), app.retryWordHandler)
	router.POST(RouteFilter, app.rateLimitMiddleware(), app.filterHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// sessionCleanupScheduler periodically drops expired sessions until stop closes.
func (app *App) sessionCleanupScheduler(stop <-chan struct{}) {
	ticker := time.NewTicker(app.SessionTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := cleanupOldSessions(app, app.SessionTimeout); err != nil {
				logWarn("Session cleanup failed: %v", err)
			}
		case <-stop:
			return
		}
	}
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
