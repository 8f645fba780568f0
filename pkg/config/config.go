package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-yaml"
)

// YNABOptions holds the connection settings for the YNAB plugin.
type YNABOptions struct {
	AccessToken string `yaml:"accessToken"`
	// BudgetID selects the budget to link against; "last-used" targets
	// the most recently used one.
	BudgetID string `yaml:"budgetId"`
	Currency string `yaml:"currency"`
	// PollSeconds is the auto-refresh cadence of the watch command.
	PollSeconds int `yaml:"pollSeconds"`
}

// Config holds the application configuration
type Config struct {
	YNAB YNABOptions `yaml:"ynab"`
}

var (
	// Global configuration instance
	globalConfig *Config
	// Mutex to ensure thread-safe access to the global configuration
	configMutex sync.RWMutex
	// Flag to track if the configuration has been loaded
	configLoaded bool
)

// LoadConfig loads the configuration from the specified YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// InitGlobalConfig initializes the global configuration from the specified file
func InitGlobalConfig(configPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = config
	configLoaded = true
	return nil
}

// GetConfig returns the global configuration instance
// If the configuration hasn't been loaded yet, it attempts to load it from
// the default location (./config.yaml)
func GetConfig() (*Config, error) {
	configMutex.RLock()
	if configLoaded {
		defer configMutex.RUnlock()
		return globalConfig, nil
	}
	configMutex.RUnlock()

	configPath := "config.yaml"
	if err := InitGlobalConfig(configPath); err != nil {
		// If the default config file doesn't exist, create it
		if errors.Is(err, os.ErrNotExist) {
			dir := filepath.Dir(configPath)
			if dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, fmt.Errorf("error creating config directory: %w", err)
				}
			}

			defaultConfig := &Config{
				YNAB: YNABOptions{
					BudgetID: "last-used",
					Currency: "USD",
				},
			}

			data, err := yaml.Marshal(defaultConfig)
			if err != nil {
				return nil, fmt.Errorf("error creating default config: %w", err)
			}

			if err := os.WriteFile(configPath, data, 0644); err != nil {
				return nil, fmt.Errorf("error writing default config: %w", err)
			}

			configMutex.Lock()
			globalConfig = defaultConfig
			configLoaded = true
			configMutex.Unlock()

			return defaultConfig, nil
		}
		return nil, err
	}

	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig, nil
}

// GetYNABAccessToken returns the YNAB access token from the configuration
func GetYNABAccessToken() (string, error) {
	config, err := GetConfig()
	if err != nil {
		return "", err
	}

	if config.YNAB.AccessToken == "" {
		return "", fmt.Errorf("ynab access token not set in configuration")
	}

	return config.YNAB.AccessToken, nil
}

// GetYNABBudgetID returns the configured budget, defaulting to the
// most recently used one
func GetYNABBudgetID() (string, error) {
	config, err := GetConfig()
	if err != nil {
		return "", err
	}

	if config.YNAB.BudgetID == "" {
		return "last-used", nil
	}
	return config.YNAB.BudgetID, nil
}

// GetCurrency returns the configured display currency
func GetCurrency() (string, error) {
	config, err := GetConfig()
	if err != nil {
		return "", err
	}

	if config.YNAB.Currency == "" {
		return "USD", nil
	}
	return config.YNAB.Currency, nil
}

// GetPollInterval returns the watch command's refresh cadence
func GetPollInterval() (time.Duration, error) {
	config, err := GetConfig()
	if err != nil {
		return 0, err
	}

	if config.YNAB.PollSeconds <= 0 {
		return 10 * time.Second, nil
	}
	return time.Duration(config.YNAB.PollSeconds) * time.Second, nil
}
