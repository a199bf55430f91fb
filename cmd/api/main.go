package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cyfrinair/cyfrinair-go/internal/config"
	"github.com/cyfrinair/cyfrinair-go/internal/handler"
	"github.com/cyfrinair/cyfrinair-go/internal/logging"
	"github.com/cyfrinair/cyfrinair-go/internal/metrics"
	"github.com/cyfrinair/cyfrinair-go/internal/service"
	"github.com/cyfrinair/cyfrinair-go/internal/wordlist"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat))

	if envErr != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	words := wordlist.Default()
	if cfg.WordListPath != "" {
		custom, err := wordlist.Load(cfg.WordListPath)
		if err != nil {
			slog.Error("loading word list", "path", cfg.WordListPath, "error", err)
			os.Exit(1)
		}
		words = custom
	}
	slog.Info("word list loaded", "words", words.Len(), "custom", cfg.WordListPath != "")

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	genService := service.NewGeneratorService(words, m)
	genHandler := handler.NewGeneratorHandler(genService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(genHandler, m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
