package config

import (
	"ctchen222/Streak-Tac-Toe/internal/validator"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"STREAK_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	SQLitePath string    `yaml:"sqlite-path" env:"STREAK_SQLITE_PATH" env-default:"./streak.db" validate:"required"`
	Redis      Redis     `yaml:"redis"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

type Redis struct {
	Addr           string        `yaml:"addr" env:"REDIS_CONNSTRING" env-default:"localhost:6379" validate:"required,hostname_port"`
	Channel        string        `yaml:"channel" env:"STREAK_REDIS_CHANNEL" env-default:"channel:board" validate:"required"`
	PublishTimeout time.Duration `yaml:"publish-timeout" env:"STREAK_REDIS_PUBLISH_TIMEOUT" env-default:"500ms" validate:"gt=0"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"STREAK_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4317" validate:"required_if=Enabled true"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"streak-tac-toe"`
}

// Load reads path and overlays the environment. A missing file is not an
// error: the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
