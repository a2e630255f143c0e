package config

import (
	"fmt"
	"reversi/searcher"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	Iterations  int     `mapstructure:"iterations"`
	Exploration float64 `mapstructure:"exploration"`
	Seed        uint64  `mapstructure:"seed"` // 0 seeds from the clock
	Games       int     `mapstructure:"games"`
	Opponent    string  `mapstructure:"opponent"` // "mcts" or "random"
	ServerPort  string  `mapstructure:"server_port"`
	LogLevel    string  `mapstructure:"log_level"`
	OutDir      string  `mapstructure:"out_dir"` // Empty disables CSV output
}

// Load reads cfgPath if given, then REVERSI_* environment variables, over
// the defaults.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("iterations", searcher.DefaultIterations)
	v.SetDefault("exploration", searcher.DefaultExploration)
	v.SetDefault("seed", 0)
	v.SetDefault("games", 1)
	v.SetDefault("opponent", "random")
	v.SetDefault("server_port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("out_dir", "")

	v.SetEnvPrefix("REVERSI")
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Exploration <= 0 {
		return fmt.Errorf("exploration must be positive, got %v", c.Exploration)
	}
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	c.Opponent = strings.ToLower(c.Opponent)
	if c.Opponent != "mcts" && c.Opponent != "random" {
		return fmt.Errorf("unknown opponent %q", c.Opponent)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c *Config) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.LogLevel)
	return level
}

// SearchOptions translates the search settings. seedOffset separates the
// random streams of searchers built from the same config.
func (c *Config) SearchOptions(seedOffset uint64) []searcher.Option {
	options := []searcher.Option{
		searcher.WithIterations(c.Iterations),
		searcher.WithExploration(c.Exploration),
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Seed+seedOffset))
	}
	return options
}
