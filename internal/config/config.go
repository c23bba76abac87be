package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 20
)

var (
	ErrInvalidBoardSize = errors.New("board size must be between 3 and 20")
	ErrInvalidLogLevel  = errors.New("log level must be one of debug, info, warn, error")
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize  int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"0"`
	FirstMover string `yaml:"first-mover" env:"FIRST_MOVER" env-default:""`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - loads config.yml when present, the environment otherwise.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - a zero board size or an empty first mover means "ask the player".
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.BoardSize != 0 && (that.BoardSize < MinBoardSize || that.BoardSize > MaxBoardSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidBoardSize, that.BoardSize)
	}

	if that.FirstMover != "" {
		if _, err := entity.ParseMark(that.FirstMover); err != nil {
			return fmt.Errorf("invalid first mover: %w", err)
		}
	}

	return nil
}

// Mover - the configured first mover, or Empty when it has to be asked.
func (that *Config) Mover() entity.Mark {
	mark, err := entity.ParseMark(that.FirstMover)
	if err != nil {
		return entity.Empty
	}

	return mark
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
