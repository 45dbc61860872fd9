package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// ErrMovesPath reports a turn script path that is not a .txt file.
var ErrMovesPath = errors.New("turn script must be a .txt file")

// Env holds the defaults the entry points read from the environment.
type Env struct {
	MovesPath  string `env:"KNIGHTS_MOVES"     envDefault:"./moves.txt"`
	OutputPath string `env:"KNIGHTS_OUTPUT"    envDefault:"./final_state.json"`
	SetupPath  string `env:"KNIGHTS_SETUP"`
	LogLevel   string `env:"KNIGHTS_LOG_LEVEL" envDefault:"info"`
}

// LoadEnv loads configuration from environment variables.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// CheckMovesPath accepts only .txt turn scripts.
func CheckMovesPath(path string) error {
	if filepath.Ext(path) != ".txt" {
		return fmt.Errorf("%w: %q", ErrMovesPath, path)
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (e Env) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
