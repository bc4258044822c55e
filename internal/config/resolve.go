package config

import (
	"os"

	"marvin/pkg/logging"
)

// Environment variables recognized between the persisted config and flags.
const (
	EnvAPIToken        = "MARVIN_API_TOKEN"
	EnvFullAccessToken = "MARVIN_FULL_ACCESS_TOKEN"
	EnvTarget          = "MARVIN_TARGET"
	EnvOutputFormat    = "MARVIN_OUTPUT"
	EnvDesktopURL      = "MARVIN_DESKTOP_URL"
	EnvPublicURL       = "MARVIN_PUBLIC_URL"
)

// Resolve merges configuration layers into the effective options for one
// invocation. Layers, lowest to highest: compiled defaults, the persisted
// file, then each overlay in order (callers pass the environment overlay
// first and the flag overlay last, so flags always win). A layer overrides
// only the fields it explicitly sets.
//
// Enum fields are validated here no matter which layer set them, so a bad
// value fails the invocation before any request is classified or dispatched.
func Resolve(file *FileConfig, overlays ...Overrides) (*Options, error) {
	opts := GetDefaultOptions()

	if file != nil {
		if file.APIToken != "" {
			opts.APIToken = file.APIToken
		}
		if file.FullAccessToken != "" {
			opts.FullAccessToken = file.FullAccessToken
		}
		if file.Target != "" {
			opts.Target = Target(file.Target)
		}
		if file.OutputFormat != "" {
			opts.OutputFormat = OutputFormat(file.OutputFormat)
		}
		if file.DesktopURL != "" {
			opts.DesktopURL = file.DesktopURL
		}
		if file.PublicURL != "" {
			opts.PublicURL = file.PublicURL
		}
		if file.Quiet != nil {
			opts.Quiet = *file.Quiet
		}
	}

	for _, layer := range overlays {
		if layer.APIToken != nil {
			opts.APIToken = *layer.APIToken
		}
		if layer.FullAccessToken != nil {
			opts.FullAccessToken = *layer.FullAccessToken
		}
		if layer.Target != nil {
			opts.Target = Target(*layer.Target)
		}
		if layer.OutputFormat != nil {
			opts.OutputFormat = OutputFormat(*layer.OutputFormat)
		}
		if layer.DesktopURL != nil {
			opts.DesktopURL = *layer.DesktopURL
		}
		if layer.PublicURL != nil {
			opts.PublicURL = *layer.PublicURL
		}
		if layer.Quiet != nil {
			opts.Quiet = *layer.Quiet
		}
		if layer.Template != "" {
			opts.Template = layer.Template
		}
		if layer.Debug {
			opts.Debug = true
		}
		if layer.NoHeaders {
			opts.NoHeaders = true
		}
	}

	if _, err := ParseTarget(string(opts.Target)); err != nil {
		return nil, err
	}
	if _, err := ParseOutputFormat(string(opts.OutputFormat)); err != nil {
		return nil, err
	}

	logging.Debug("config", "resolved %s", opts.String())
	return &opts, nil
}

// EnvOverrides builds the environment overlay from MARVIN_* variables. A
// variable that is set, even to the empty string, overrides the layers
// below it.
func EnvOverrides() Overrides {
	var env Overrides
	if v, ok := os.LookupEnv(EnvAPIToken); ok {
		env.APIToken = &v
	}
	if v, ok := os.LookupEnv(EnvFullAccessToken); ok {
		env.FullAccessToken = &v
	}
	if v, ok := os.LookupEnv(EnvTarget); ok {
		env.Target = &v
	}
	if v, ok := os.LookupEnv(EnvOutputFormat); ok {
		env.OutputFormat = &v
	}
	if v, ok := os.LookupEnv(EnvDesktopURL); ok {
		env.DesktopURL = &v
	}
	if v, ok := os.LookupEnv(EnvPublicURL); ok {
		env.PublicURL = &v
	}
	return env
}
