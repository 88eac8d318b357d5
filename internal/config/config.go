// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Providers ProvidersConfig `toml:"providers"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type ProvidersConfig struct {
	TMDB   TMDBConfig   `toml:"tmdb"`
	TVMaze TVMazeConfig `toml:"tvmaze"`
}

type TMDBConfig struct {
	APIKey string `toml:"api_key"`
	URL    string `toml:"url"`
}

type TVMazeConfig struct {
	Enabled *bool  `toml:"enabled"`
	URL     string `toml:"url"`
}

// Load reads and parses the configuration file, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file without
// running validation. Defaults are still applied.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied and no file read.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/screenfind.db"
	}
	if c.Providers.TMDB.URL == "" {
		c.Providers.TMDB.URL = "https://api.themoviedb.org"
	}
	if c.Providers.TVMaze.URL == "" {
		c.Providers.TVMaze.URL = "https://api.tvmaze.com"
	}
}

// TVMazeEnabled reports whether the TVMaze provider should be queried.
// It defaults to on when the config omits the flag.
func (c *Config) TVMazeEnabled() bool {
	if c.Providers.TVMaze.Enabled == nil {
		return true
	}
	return *c.Providers.TVMaze.Enabled
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
