package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Log      Log    `yaml:"log"`
	Game     Game   `yaml:"game"`
}

type Log struct {
	File       string `yaml:"file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Format     string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	MaxSize    int    `yaml:"max-size" env:"LOG_MAX_SIZE" env-default:"10"`
	MaxBackups int    `yaml:"max-backups" env:"LOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"max-age" env:"LOG_MAX_AGE" env-default:"28"`
	Compress   bool   `yaml:"compress" env:"LOG_COMPRESS" env-default:"false"`
}

type Game struct {
	MaxBoardSize int `yaml:"max-board-size" env:"MAX_BOARD_SIZE" env-default:"26"`
}

// Load - reads the config file when it exists, otherwise the environment alone.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load, but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
