package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type config struct {
	Producers int        `env:"DEMO_PRODUCERS" envDefault:"3"`
	Values    int        `env:"DEMO_VALUES" envDefault:"5"`
	Forks     int        `env:"DEMO_FORKS" envDefault:"2"`
	LogLevel  slog.Level `env:"DEMO_LOG_LEVEL" envDefault:"info"`
}

// loadConfig reads an optional .env file, then the environment.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Producers <= 0 || cfg.Values <= 0 || cfg.Forks < 0 {
		return config{}, fmt.Errorf("invalid config: producers=%d values=%d forks=%d",
			cfg.Producers, cfg.Values, cfg.Forks)
	}
	return cfg, nil
}
