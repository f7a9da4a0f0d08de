package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	DatasetPath      string `yaml:"dataset_path"       env:"SEEDER_DATASET_PATH"`
	PasswordHashCost int    `yaml:"password_hash_cost" env:"SEEDER_PASSWORD_HASH_COST" env-default:"10"`
	RandomSeed       uint64 `yaml:"random_seed"        env:"SEEDER_RANDOM_SEED"        env-default:"42"`
	MaxCredits       int    `yaml:"max_credits"        env:"SEEDER_MAX_CREDITS"        env-default:"4"`
	DryRun           bool   `yaml:"dry_run"            env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
