package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// Config only tunes diagnostics. None of the fields declare an env tag,
// so the environment is never consulted.
type Config struct {
	LogLevel  string `yaml:"log-level" env-default:"warn"`
	LogFormat string `yaml:"log-format" env-default:"json"`
}

// Load - reads the config file at path, falling back to defaults when it does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to apply config defaults: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Level - maps log-level to a slog level. Unknown values fall back to warn.
func (that *Config) Level() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}

func (that *Config) validate() error {
	if _, err := that.Level(); err != nil {
		return err
	}

	switch that.LogFormat {
	case FormatJSON, FormatText:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}
}
