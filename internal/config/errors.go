package config

import "fmt"

// ConfigurationError reports an invalid configuration value, regardless of
// whether it came from the persisted file, the environment, or a flag. It is
// fatal: commands refuse to run with a broken configuration.
type ConfigurationError struct {
	Setting string // configuration key, e.g. "target"
	Value   string // the offending value, empty when not value-specific
	Message string // human-readable description
	Err     error  // underlying error, if any
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	if ce.Setting == "" {
		return fmt.Sprintf("invalid configuration: %s", ce.Message)
	}
	if ce.Value == "" {
		return fmt.Sprintf("invalid configuration: %s: %s", ce.Setting, ce.Message)
	}
	return fmt.Sprintf("invalid configuration: %s %q: %s", ce.Setting, ce.Value, ce.Message)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (ce *ConfigurationError) Unwrap() error {
	return ce.Err
}

// NewConfigurationError creates a configuration error for a specific setting.
func NewConfigurationError(setting, value, message string) *ConfigurationError {
	return &ConfigurationError{
		Setting: setting,
		Value:   value,
		Message: message,
	}
}
