package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Console  Console `yaml:"console"`
}

// Console switches must default to false: cleanenv replaces zero values read
// from the file with env-default.
type Console struct {
	NoColor     bool `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	HideIndices bool `yaml:"hide-indices" env:"TICTACTOE_HIDE_INDICES"`
}

// MustLoad - load all configurations in config.yml file, falling back to the
// environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
