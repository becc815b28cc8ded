package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the app settings, loaded from environment variables.
type Config struct {
	// Seed for the dice randomness source. 0 means time-seeded.
	Seed         int64 `env:"DICEPAD_SEED"`
	WindowWidth  int   `env:"DICEPAD_WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight int   `env:"DICEPAD_WINDOW_HEIGHT" envDefault:"768"`
	// GutterRatio is the initial width of the results gutter as a fraction
	// of the window width.
	GutterRatio float64 `env:"DICEPAD_GUTTER_RATIO" envDefault:"0.33"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.GutterRatio <= 0 || cfg.GutterRatio >= 1 {
		return Config{}, fmt.Errorf("DICEPAD_GUTTER_RATIO must be between 0 and 1, got %v", cfg.GutterRatio)
	}
	return cfg, nil
}
