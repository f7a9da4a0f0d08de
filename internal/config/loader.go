package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
	dotEnvPath        = ".env"
)

// Load builds the Config every stagehype command starts from.
//
// A .env file in the working directory is applied first; it never overrides
// variables already set in the process. Then the YAML file named by
// CONFIG_PATH (or ./config.yaml) is read, with ENV taking precedence over
// YAML and env-default tags filling the rest. A missing ./config.yaml is
// fine, a missing explicit CONFIG_PATH is not.
func Load() (*Config, error) {
	if err := godotenv.Load(dotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", dotEnvPath, err)
	}

	var cfg Config
	path, explicit := os.LookupEnv(configPathEnv)
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
