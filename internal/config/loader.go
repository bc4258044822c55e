package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"marvin/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/marvin"
	configFileName = "config.yaml"

	// configFileMode keeps the persisted file private; it holds API tokens.
	configFileMode os.FileMode = 0o600
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// ConfigFilePath returns the config.yaml location inside a config directory.
func ConfigFilePath(configPath string) string {
	return filepath.Join(configPath, configFileName)
}

// LoadFileConfig loads the persisted configuration from the specified
// directory. A missing config.yaml is not an error; resolution proceeds from
// the compiled defaults.
func LoadFileConfig(configPath string) (*FileConfig, error) {
	configFilePath := ConfigFilePath(configPath)

	var file FileConfig
	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("config", "no config.yaml at %s, using defaults", configFilePath)
			return &file, nil
		}
		return nil, &ConfigurationError{
			Setting: "configPath",
			Value:   configFilePath,
			Message: "cannot read configuration file",
			Err:     err,
		}
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ConfigurationError{
			Setting: "configPath",
			Value:   configFilePath,
			Message: fmt.Sprintf("malformed configuration file: %v", err),
			Err:     err,
		}
	}
	logging.Debug("config", "loaded configuration from %s", configFilePath)
	return &file, nil
}

// SaveFileConfig persists the configuration atomically, creating the config
// directory if needed. A crash mid-save never leaves a truncated file behind.
func SaveFileConfig(configPath string, file *FileConfig) error {
	if err := os.MkdirAll(configPath, 0o755); err != nil {
		return &ConfigurationError{
			Setting: "configPath",
			Value:   configPath,
			Message: "cannot create configuration directory",
			Err:     err,
		}
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	configFilePath := ConfigFilePath(configPath)
	if err := atomicWriteFile(configFilePath, data, configFileMode); err != nil {
		return &ConfigurationError{
			Setting: "configPath",
			Value:   configFilePath,
			Message: "cannot write configuration file",
			Err:     err,
		}
	}
	logging.Debug("config", "saved configuration to %s", configFilePath)
	return nil
}
