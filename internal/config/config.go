// ABOUTME: Configuration management for quill with YAML config loading.
// ABOUTME: Handles WordPress credentials, checkpoint path overrides, and ~ expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config stores quill configuration loaded from ~/.config/quill/config.yaml.
type Config struct {
	WordPress WordPressConfig `yaml:"wordpress"`
	Session   SessionConfig   `yaml:"session"`
}

// WordPressConfig holds the site URL and application password credentials.
type WordPressConfig struct {
	SiteURL     string `yaml:"site_url"`
	Username    string `yaml:"username"`
	AppPassword string `yaml:"app_password"`
}

// SessionConfig holds optional overrides for session state storage.
type SessionConfig struct {
	CheckpointPath string `yaml:"checkpoint_path"`
}

// HasWordPress returns true if WordPress credentials are configured.
func (c *Config) HasWordPress() bool {
	return c.WordPress.SiteURL != "" && c.WordPress.Username != "" && c.WordPress.AppPassword != ""
}

// GetCheckpointPath returns the session checkpoint file path, defaulting to
// checkpoint.json under the data directory.
func (c *Config) GetCheckpointPath() (string, error) {
	if c.Session.CheckpointPath != "" {
		return ExpandPath(c.Session.CheckpointPath)
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "checkpoint.json"), nil
}

// DataDir returns the default quill data directory.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "quill"), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "quill", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Load reads config from disk. Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
