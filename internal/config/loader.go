package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable holding the YAML config path.
const PathEnv = "DAILYDIET_CONFIG"

const defaultPath = "./config.yaml"

// Load builds the configuration from env-default tags, then the YAML file,
// then the environment, each overriding the previous. The file is taken from
// DAILYDIET_CONFIG; when that is unset or empty, ./config.yaml is used if it
// exists. A missing file named by DAILYDIET_CONFIG is an error.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv(PathEnv)
	if path == "" {
		path, explicit = defaultPath, false
	}

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: %s=%s: %w", PathEnv, path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
