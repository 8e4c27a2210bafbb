package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/melaodoidao/datagov-mcp-server/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/datagov-mcp-server"
	configFileName = "config.yaml"
)

// GetDefaultConfigPathOrPanic returns ~/.config/datagov-mcp-server. It
// panics when the home directory cannot be determined, which only
// happens in stripped-down environments that are unusable anyway.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the given directory. A missing
// config.yaml yields the defaults; values present in the file override
// the matching defaults field by field. A malformed file is an error.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return Config{}, fmt.Errorf("error reading config from %s: %w", configFilePath, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Info("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
