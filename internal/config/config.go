package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// DefaultServerURL is the hardcoded fallback when neither the
	// environment nor the config file names a backend.
	DefaultServerURL = "https://mustardworks-backend.onrender.com/api"

	// EnvServerURL overrides every other server URL source.
	EnvServerURL = "MWADMIN_API_BASE_URL"

	configDirName  = ".mwadmin"
	configFileName = "config.json"
)

// Config represents the console configuration persisted under the
// user's home directory. Identity fields are display-only copies from
// the last login; the session token itself lives in the session store.
type Config struct {
	// API server URL
	ServerURL string `json:"server_url"`

	// Identity of the last logged-in admin
	AdminID string `json:"admin_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`

	// Light/dark preference for the dashboard UI
	Theme string `json:"theme,omitempty"`
}

// ResolveServerURL applies the precedence order: environment variable,
// saved config, hardcoded fallback.
func (c *Config) ResolveServerURL() string {
	if url := os.Getenv(EnvServerURL); url != "" {
		return url
	}
	if c != nil && c.ServerURL != "" {
		return c.ServerURL
	}
	return DefaultServerURL
}

// GetGlobalConfigDir returns the per-user config directory.
func GetGlobalConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configDirName), nil
}

// GetGlobalConfigPath returns the path to the config file.
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadGlobalConfig loads the configuration, returning defaults when no
// file exists yet.
func LoadGlobalConfig() (*Config, error) {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Load loads the configuration from the given file path
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{
			ServerURL: DefaultServerURL,
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveGlobalConfig saves the configuration to the default location.
func SaveGlobalConfig(cfg *Config) error {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}
	return cfg.Save(path)
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
