package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ghadmin/pkg/dispatch"
)

// Config represents the ghadmin configuration
type Config struct {
	Dispatcher DispatcherConfig `yaml:"dispatcher"`
	GitHub     GitHubConfig     `yaml:"github"`
}

// DispatcherConfig controls how the external admin script is invoked
type DispatcherConfig struct {
	Script      string   `yaml:"script"`
	Interpreter string   `yaml:"interpreter"`
	AllowedOrgs []string `yaml:"allowed_orgs"`
}

// GitHubConfig represents GitHub-specific configuration
type GitHubConfig struct {
	Token        string `yaml:"token,omitempty"`
	Organization string `yaml:"organization,omitempty"`
	EnvFile      string `yaml:"env_file,omitempty"`
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil // Fall back to defaults if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Dispatcher: DispatcherConfig{
			Script:      dispatch.DefaultScript,
			Interpreter: dispatch.DefaultInterpreter,
			AllowedOrgs: append([]string(nil), dispatch.DefaultAllowedOrgs...),
		},
	}
}

// SaveConfig saves configuration to the default location
func (c *Config) SaveConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveConfigToPath(configPath)
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".ghadmin", "config.yaml"), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dispatcher.Script == "" {
		return fmt.Errorf("dispatcher script path is required")
	}

	for i, org := range c.Dispatcher.AllowedOrgs {
		if org == "" {
			return fmt.Errorf("allowed_orgs entry %d is empty", i+1)
		}
	}

	return nil
}
