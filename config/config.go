// Package config reads run settings from the environment and from optional
// .env files.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded by Load when no file is named and it exists.
const DefaultEnvFile = ".env"

// Config holds the settings of a run. Command line flags take precedence
// over it.
type Config struct {
	// MaxExecutionsPerTick caps the executions of one step. Nil leaves the
	// engine unbounded.
	MaxExecutionsPerTick *uint64 `env:"TICKLOOP_MAX_EXECUTIONS_PER_TICK"`

	StartTick uint64 `env:"TICKLOOP_START_TICK" envDefault:"0"`
	Ticks     uint64 `env:"TICKLOOP_TICKS" envDefault:"100"`

	Monitor     bool `env:"TICKLOOP_MONITOR"`
	MonitorPort int  `env:"TICKLOOP_MONITOR_PORT"`

	Record     bool   `env:"TICKLOOP_RECORD"`
	RecordPath string `env:"TICKLOOP_RECORD_PATH"`
	TracePath  string `env:"TICKLOOP_TRACE_PATH"`

	LogLevel string `env:"TICKLOOP_LOG_LEVEL" envDefault:"info"`
}

// Load loads the given env files, or DefaultEnvFile if none is given and it
// exists, and then parses the environment. Variables already set in the
// environment are not overridden by the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_, err := os.Stat(DefaultEnvFile)
		if err == nil {
			files = []string{DefaultEnvFile}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat %s: %w", DefaultEnvFile, err)
		}
	}

	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	return Parse()
}

// Parse reads the configuration from environment variables. Values are not
// validated, since command line flags may still replace them; call Validate
// once the final settings are known.
func Parse() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks the values that the environment parser cannot.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.MonitorPort < 0 || c.MonitorPort > 65535 {
		return fmt.Errorf("invalid monitor port %d", c.MonitorPort)
	}

	if !c.Record && c.RecordPath != "" {
		return errors.New("record path is set but recording is off")
	}

	return nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// Logger creates a text logger writing to w at the configured level. An
// invalid level falls back to info.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
