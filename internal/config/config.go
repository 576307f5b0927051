package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogOutput string `yaml:"log-output" env:"LOG_OUTPUT" env-default:"stderr"`
	HumanMark string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
}

// Load - reads the config file at path, falling back to the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if _, err := config.GetHumanMark(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) GetHumanMark() (entity.Cell, error) {
	mark, err := entity.ParseMark(that.HumanMark)
	if err != nil {
		return entity.Empty, fmt.Errorf("human-mark: %w", err)
	}

	return mark, nil
}
