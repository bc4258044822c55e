// Package config provides configuration management for marvin.
//
// This package implements a layered configuration system. The effective
// options of an invocation are resolved from three sources, lowest to
// highest precedence:
//
//   - compiled defaults (GetDefaultOptions)
//   - the persisted config file (~/.config/marvin/config.yaml, or the
//     directory given via --config-path)
//   - explicit overrides (MARVIN_* environment variables, then flags)
//
// A layer overrides only the fields it explicitly sets. The result is an
// immutable Options value handed to the rest of the program; nothing
// re-reads configuration after startup.
//
// # Configuration File
//
// The persisted file is plain YAML:
//
//	apiToken: "..."
//	fullAccessToken: "..."
//	target: auto        # auto | desktop | public
//	outputFormat: text  # json | csv | text | template
//	desktopUrl: http://localhost:12345/api
//	publicUrl: https://serv.amazingmarvin.com/api
//	quiet: false
//
// A missing file is not an error; compiled defaults apply. A malformed file
// or an invalid enum value is a *ConfigurationError and aborts the
// invocation before any request is made.
//
// Saves go through an atomic write (temp file + rename) so an interrupted
// `marvin config set` never leaves a truncated config.yaml behind. The file
// carries mode 0600 because it holds API tokens.
package config
