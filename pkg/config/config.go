package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the fstream tool configuration.
type Config struct {
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}

// ClientConfig controls how remote sources are fetched.
type ClientConfig struct {
	Timeout         time.Duration `yaml:"timeout"`
	UserAgent       string        `yaml:"userAgent"`
	FollowRedirects bool          `yaml:"followRedirects"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig holds the built-in defaults.
var DefaultConfig = Config{
	Client: ClientConfig{
		Timeout:         30 * time.Second,
		UserAgent:       "fstream",
		FollowRedirects: true,
	},
	Logging: LoggingConfig{
		Level: "INFO",
	},
}

// Load builds the configuration in order of precedence: environment
// variables over an optional YAML file over built-in defaults. An explicit
// path must exist; otherwise well-known locations are tried and skipped when
// absent. Returns the config and the path it was loaded from.
func Load(path string) (*Config, string, error) {
	cfg := DefaultConfig

	loadedFrom, err := loadFromFile(&cfg, path)
	if err != nil {
		return nil, "", err
	}

	loadFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, loadedFrom, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Client.Timeout < 0 {
		return fmt.Errorf("client timeout must not be negative, got %v", c.Client.Timeout)
	}
	switch c.Logging.Level {
	case "DEBUG", "INFO", "WARN", "ERROR", "":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

func loadFromFile(cfg *Config, explicit string) (string, error) {
	paths := []string{
		explicit,
		os.Getenv("FSTREAM_CONFIG_PATH"),
		"./fstream.yml",
		"/etc/fstream/config.yml",
	}

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) && !(i == 0 && explicit != "") {
				continue
			}
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

func loadFromEnv(cfg *Config) {
	if val := os.Getenv("FSTREAM_TIMEOUT"); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil {
			cfg.Client.Timeout = timeout
		}
	}
	if val := os.Getenv("FSTREAM_USER_AGENT"); val != "" {
		cfg.Client.UserAgent = val
	}
	if val := os.Getenv("FSTREAM_FOLLOW_REDIRECTS"); val != "" {
		cfg.Client.FollowRedirects = val == "true" || val == "1"
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
}
