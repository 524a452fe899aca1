// Package config provides configuration management for Relay Cycler.
// It handles the application settings file and the home reference record
// that anchors distance ranking.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yllada/relay-cycler/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// ShowNotifications enables desktop notifications for cycle outcomes.
	ShowNotifications bool `yaml:"show_notifications"`
	// UseLock guards the read-decide-command sequence with an advisory
	// lock so concurrent invocations don't race on the daemon.
	UseLock bool `yaml:"use_lock"`
	// PollIntervalMs is the delay between daemon status polls while
	// waiting for a connection, in milliseconds.
	PollIntervalMs int `yaml:"poll_interval_ms"`
	// ConnectTimeoutS is the total time to wait for the daemon to reach
	// a connected state, in seconds.
	ConnectTimeoutS int `yaml:"connect_timeout_s"`
	// PreflightHosts are dialed (any one suffices) to verify network
	// reachability before the daemon is told to move.
	PreflightHosts []string `yaml:"preflight_hosts"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowNotifications: true,
		UseLock:           true,
		PollIntervalMs:    int(common.PollInterval / time.Millisecond),
		ConnectTimeoutS:   int(common.ConnectTimeout / time.Second),
		PreflightHosts: []string{
			"9.9.9.9:53",
			"1.1.1.1:53",
		},
	}
}

// PollInterval returns the poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ConnectTimeout returns the connect timeout as a duration.
func (c *Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutS) * time.Second
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	config.validate()

	return &config, nil
}

// validate clamps out-of-range values back to defaults.
func (c *Config) validate() {
	def := DefaultConfig()
	if c.PollIntervalMs <= 0 {
		c.PollIntervalMs = def.PollIntervalMs
	}
	if c.ConnectTimeoutS <= 0 {
		c.ConnectTimeoutS = def.ConnectTimeoutS
	}
	if c.ConnectTimeout() < c.PollInterval() {
		c.PollIntervalMs = def.PollIntervalMs
		c.ConnectTimeoutS = def.ConnectTimeoutS
	}
	if len(c.PreflightHosts) == 0 {
		c.PreflightHosts = def.PreflightHosts
	}
}

// Save saves the configuration to the file.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.ConfigFileName), nil
}
