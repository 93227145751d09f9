package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/last-touch/constants"
)

// Config is the runtime configuration, read from the environment with
// an optional .env file. Everything has a sensible default; the binary
// runs with no configuration at all.
type Config struct {
	// EliminationInterval is the roulette cadence.
	EliminationInterval time.Duration `env:"LASTTOUCH_ELIMINATION_INTERVAL" envDefault:"4s"`

	// FrameRate drives rendering and event dispatch, frames per second.
	FrameRate int `env:"LASTTOUCH_FPS" envDefault:"30"`

	// Muted starts the game silent. Toggleable at runtime.
	Muted bool `env:"LASTTOUCH_MUTED" envDefault:"false"`

	// Seed fixes the random source for elimination and color draws.
	// Zero means time-based.
	Seed int64 `env:"LASTTOUCH_SEED" envDefault:"0"`

	// LogFile enables structured diagnostics to the given path. The
	// terminal owns stdout, so file output is the only option.
	LogFile string `env:"LASTTOUCH_LOG_FILE"`
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.EliminationInterval <= 0 {
		return fmt.Errorf("elimination interval must be positive, got %v", c.EliminationInterval)
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("frame rate must be in [1, 240], got %d", c.FrameRate)
	}
	return nil
}

// FrameInterval returns the render tick period.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// Default returns the built-in configuration without touching the
// environment.
func Default() Config {
	return Config{
		EliminationInterval: constants.EliminationInterval,
		FrameRate:           constants.DefaultFrameRate,
	}
}
