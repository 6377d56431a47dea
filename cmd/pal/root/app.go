package root

import (
	"log/slog"
	"os"
	"time"

	"palplanner/internal/app"
	"palplanner/internal/config"
)

// openApp builds the in-memory application from configuration. Commands
// are single-shot, so expiration is checked once up front instead of
// running the background sweeper; the board starts the real tickers.
func openApp() (*app.App, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = "."
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	a, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	a.Tasks.CheckExpired(time.Now())
	return a, nil
}
