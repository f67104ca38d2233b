package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/Edrisabdella/Ubuntu-Requests/internal/fetcher"
	fetchhttp "github.com/Edrisabdella/Ubuntu-Requests/internal/http"
)

// Config defines configuration for the ubuntu-fetch CLI.
type Config struct {
	Dest        string        `yaml:"dest"`
	MaxFileSize int64         `yaml:"max_file_size"`
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"user_agent"`
	ChunkSize   int           `yaml:"chunk_size"`
	Verbose     bool          `yaml:"verbose"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Dest:        "Fetched_Images",
		MaxFileSize: fetcher.DefaultMaxFileSize,
		Timeout:     15 * time.Second,
		UserAgent:   fetchhttp.DefaultUserAgent,
		ChunkSize:   fetcher.DefaultChunkSize,
	}
}

// yamlConfig is used for YAML unmarshaling with human-readable sizes and
// durations ("10MiB", "15s").
type yamlConfig struct {
	Dest        string `yaml:"dest"`
	MaxFileSize string `yaml:"max_file_size"`
	Timeout     string `yaml:"timeout"`
	UserAgent   string `yaml:"user_agent"`
	ChunkSize   int    `yaml:"chunk_size"`
	Verbose     bool   `yaml:"verbose"`
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.Dest != "" {
		cfg.Dest = yc.Dest
	}
	if yc.MaxFileSize != "" {
		size, err := humanize.ParseBytes(yc.MaxFileSize)
		if err != nil {
			return Config{}, fmt.Errorf("parse max_file_size: %w", err)
		}
		cfg.MaxFileSize = int64(size)
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if yc.UserAgent != "" {
		cfg.UserAgent = yc.UserAgent
	}
	if yc.ChunkSize != 0 {
		cfg.ChunkSize = yc.ChunkSize
	}
	cfg.Verbose = yc.Verbose

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the UBUNTU_FETCH_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("UBUNTU_FETCH_DEST"); v != "" {
		c.Dest = v
	}
	if v := os.Getenv("UBUNTU_FETCH_MAX_FILE_SIZE"); v != "" {
		size, err := humanize.ParseBytes(v)
		if err != nil {
			return fmt.Errorf("parse UBUNTU_FETCH_MAX_FILE_SIZE: %w", err)
		}
		c.MaxFileSize = int64(size)
	}
	if v := os.Getenv("UBUNTU_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse UBUNTU_FETCH_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("UBUNTU_FETCH_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv("UBUNTU_FETCH_CHUNK_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse UBUNTU_FETCH_CHUNK_SIZE: %w", err)
		}
		c.ChunkSize = n
	}
	if v := os.Getenv("UBUNTU_FETCH_VERBOSE"); v != "" {
		c.Verbose = v == "true" || v == "1"
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Dest == "" {
		return errors.New("config: dest is required")
	}
	if c.MaxFileSize <= 0 {
		return errors.New("config: max_file_size must be positive")
	}
	if c.Timeout <= 0 {
		return errors.New("config: timeout must be positive")
	}
	if c.ChunkSize <= 0 {
		return errors.New("config: chunk_size must be positive")
	}
	return nil
}

// Merge merges override values into c, returning a new Config.
// Zero values in override are ignored.
func (c Config) Merge(override Config) Config {
	if override.Dest != "" {
		c.Dest = override.Dest
	}
	if override.MaxFileSize != 0 {
		c.MaxFileSize = override.MaxFileSize
	}
	if override.Timeout != 0 {
		c.Timeout = override.Timeout
	}
	if override.UserAgent != "" {
		c.UserAgent = override.UserAgent
	}
	if override.ChunkSize != 0 {
		c.ChunkSize = override.ChunkSize
	}
	if override.Verbose {
		c.Verbose = override.Verbose
	}
	return c
}
