package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration: reward balance plus the
// flavor-text collaborator settings.
type Config struct {
	Balance Balance `yaml:"balance" json:"balance"`
	Flavor  Flavor  `yaml:"flavor" json:"flavor"`
}

type Flavor struct {
	Model          string `yaml:"model" json:"model"`
	BaseURL        string `yaml:"base_url" json:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	// APIKey is only read from the environment, never from the file.
	APIKey string `yaml:"-" json:"-"`
}

func (f Flavor) Timeout() time.Duration {
	if f.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(f.TimeoutSeconds) * time.Second
}

func DefaultConfig() Config {
	return Config{
		Balance: Default(),
		Flavor: Flavor{
			TimeoutSeconds: 5,
		},
	}
}

// Load builds the effective configuration: defaults, overlaid by an optional
// YAML file, overlaid by environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}
