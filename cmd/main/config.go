package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/verse"
	"github.com/natefinch/atomic"
)

// ServerConfig holds the settings for the HTTP server and the stores behind it.
type ServerConfig struct {
	ServerAddr         string `json:"server_addr"`
	LogLevel           string `json:"log_level"`
	DataDir            string `json:"data_dir"`
	CorpusDatabasePath string `json:"corpus_database_path"`
	LexiconPath        string `json:"lexicon_path"`
	TemplatePath       string `json:"template_path"`
	CorpusModel        string `json:"corpus_model"`
	RemoteURL          string `json:"remote_url"`
	RemoteTimeoutSec   int    `json:"remote_timeout_sec"`
	RandomSeed         uint64 `json:"random_seed"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	Server *ServerConfig `json:"server_config"`
	Engine *verse.Config `json:"engine_config"`
}

// DefaultServerConfig creates a server configuration with default values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerAddr:         ":7277",
		LogLevel:           "info",
		DataDir:            "./data",
		CorpusDatabasePath: "./data/verseseed_corpus.db?_journal_mode=WAL&_busy_timeout=5000",
		RemoteTimeoutSec:   10,
	}
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	engine := verse.DefaultConfig()
	return &Config{
		Server: DefaultServerConfig(),
		Engine: &engine,
	}
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Server == nil {
		errs = append(errs, errors.New("server_config is missing"))
	} else {
		if c.Server.ServerAddr == "" {
			errs = append(errs, errors.New("server_addr must not be empty"))
		}
		if _, err := parseLogLevel(c.Server.LogLevel); err != nil {
			errs = append(errs, err)
		}
		if c.Server.RemoteTimeoutSec < 0 {
			errs = append(errs, fmt.Errorf("remote_timeout_sec must not be negative, got %d", c.Server.RemoteTimeoutSec))
		}
	}
	if c.Engine == nil {
		errs = append(errs, errors.New("engine_config is missing"))
	} else if err := c.Engine.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The defaults are still usable without a file on disk.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// parseLogLevel maps a config level name to a slog level. An empty name is info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", level)
}
