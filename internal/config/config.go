package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type OutputConfig struct {
	Format string `yaml:"format"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	APIKey  string       `yaml:"apiKey"`
	BaseURL string       `yaml:"baseURL"`
	Output  OutputConfig `yaml:"output"`
}

// DefaultPath returns the per-user config location. SUPADATA_CONFIG
// overrides it; otherwise XDG_CONFIG_HOME (or ~/.config) is used.
func DefaultPath() string {
	if p := os.Getenv("SUPADATA_CONFIG"); p != "" {
		return p
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("supadata", "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "supadata", "config.yaml")
}

// Load reads configuration from path. When explicit is false the path
// came from DefaultPath and a missing file yields the zero config; an
// explicitly requested file must exist.
func Load(path string, explicit bool) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv overlays SUPADATA_* environment variables onto cfg. Env
// values win over file values; flags are applied by the caller on top.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SUPADATA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("SUPADATA_BASE_URL"); v != "" {
		c.BaseURL = v
	}
}
