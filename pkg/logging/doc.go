// Package logging provides structured diagnostic logging for marvin.
//
// This package implements a thin layer over Go's standard slog package,
// providing consistent logging behavior with structured output and level
// filtering.
//
// # Usage
//
//	import "marvin/pkg/logging"
//
//	// Initialize with Warn level logging to stderr
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	// Log messages
//	logging.Debug("config", "loaded configuration from %s", configPath)
//	logging.Warn("dispatch", "desktop endpoint unreachable, trying public API")
//	logging.Error("dispatch", err, "request failed")
//
// Diagnostics are written to stderr so they never interleave with command
// output on stdout, which may be piped into other tools.
//
// # Subsystem Organization
//
// Logs are tagged by subsystem to enable filtering and categorization:
//
//   - **config**: Configuration loading, merging, and validation
//   - **classify**: Request content classification
//   - **dispatch**: Endpoint resolution and HTTP dispatch
//   - **render**: Output formatting
//   - **mcp**: MCP tool server operations
//
// # Thread Safety
//
// The logging system is fully thread-safe:
//   - Safe concurrent logging from multiple goroutines
//   - Level filtering at handler level for efficiency
//   - No memory allocation for filtered-out messages
package logging
