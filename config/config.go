package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type SearchConfig struct {
	MaxDepth            int  `yaml:"max_depth"`
	Workers             int  `yaml:"workers"`
	ForbidFaintedSwitch bool `yaml:"forbid_fainted_switch"`
	// Level is assumed for Pokemon whose level was never shown.
	Level int `yaml:"level"`
}

type Config struct {
	Addr          string        `yaml:"addr"`
	ShowdownURL   string        `yaml:"showdown_url"`
	PokedexPath   string        `yaml:"pokedex"`
	MovesPath     string        `yaml:"moves"`
	StaticDir     string        `yaml:"static_dir"`
	Perspective   string        `yaml:"perspective"`
	MaxReconnects int           `yaml:"max_reconnects"`
	PingInterval  time.Duration `yaml:"ping_interval"`
	Search        SearchConfig  `yaml:"search"`
}

func Default() *Config {
	return &Config{
		Addr:          ":42069",
		ShowdownURL:   "wss://sim.psim.us/showdown/websocket",
		PokedexPath:   "data/pokedex.json",
		MovesPath:     "data/moves.json",
		StaticDir:     "static",
		Perspective:   "p1",
		MaxReconnects: 3,
		PingInterval:  20 * time.Second,
		Search: SearchConfig{
			MaxDepth: 2,
			Workers:  1,
			Level:    100,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Search.MaxDepth < 1 {
		return fmt.Errorf("search.max_depth must be at least 1, got %d", c.Search.MaxDepth)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("search.workers must be at least 1, got %d", c.Search.Workers)
	}
	if c.PingInterval <= 0 {
		return fmt.Errorf("ping_interval must be positive, got %v", c.PingInterval)
	}
	if c.MaxReconnects < 1 {
		return fmt.Errorf("max_reconnects must be at least 1, got %d", c.MaxReconnects)
	}
	if c.Perspective != "p1" && c.Perspective != "p2" {
		return fmt.Errorf("perspective must be p1 or p2, got %q", c.Perspective)
	}
	return nil
}
