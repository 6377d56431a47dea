// Package config loads the application configuration from an optional
// .palplanner.yaml file, falling back to defaults for every key.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"palplanner/internal/notify"
	"palplanner/internal/pet"
	"palplanner/internal/task"
)

// Config carries everything the application shell needs to wire the
// stores. The core packages never read configuration themselves.
type Config struct {
	PetName         string
	StartingBalance int
	SweepInterval   time.Duration
	DecayInterval   time.Duration
	NotifyLead      notify.Lead
	CatalogPath     string
	SeedSamples     bool
	LogLevel        slog.Level
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		PetName:         pet.DefaultName,
		StartingBalance: task.DefaultStartingBalance,
		SweepInterval:   task.DefaultSweepInterval,
		DecayInterval:   pet.DefaultDecayInterval,
		NotifyLead:      notify.DefaultLead,
		CatalogPath:     "",
		SeedSamples:     false,
		LogLevel:        slog.LevelInfo,
	}
}

// Load reads .palplanner.yaml from dir. A missing file returns defaults; a
// malformed file or invalid value is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName(".palplanner")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("pet.name", cfg.PetName)
	v.SetDefault("points.starting", cfg.StartingBalance)
	v.SetDefault("sweep.interval", cfg.SweepInterval.String())
	v.SetDefault("decay.interval", cfg.DecayInterval.String())
	v.SetDefault("notify.lead", string(cfg.NotifyLead))
	v.SetDefault("shop.catalog", cfg.CatalogPath)
	v.SetDefault("demo.seed", cfg.SeedSamples)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .palplanner.yaml: %w", err)
	}

	cfg.PetName = v.GetString("pet.name")
	cfg.StartingBalance = v.GetInt("points.starting")
	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("points.starting must not be negative (got %d)", cfg.StartingBalance)
	}

	sweep, err := time.ParseDuration(v.GetString("sweep.interval"))
	if err != nil {
		return nil, fmt.Errorf("sweep.interval: %w", err)
	}
	if sweep <= 0 {
		return nil, fmt.Errorf("sweep.interval must be positive (got %s)", sweep)
	}
	cfg.SweepInterval = sweep

	decay, err := time.ParseDuration(v.GetString("decay.interval"))
	if err != nil {
		return nil, fmt.Errorf("decay.interval: %w", err)
	}
	if decay <= 0 {
		return nil, fmt.Errorf("decay.interval must be positive (got %s)", decay)
	}
	cfg.DecayInterval = decay

	lead, err := notify.ParseLead(v.GetString("notify.lead"))
	if err != nil {
		return nil, err
	}
	cfg.NotifyLead = lead

	cfg.CatalogPath = v.GetString("shop.catalog")
	cfg.SeedSamples = v.GetBool("demo.seed")

	level, err := parseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log.level: %q", s)
	}
}
