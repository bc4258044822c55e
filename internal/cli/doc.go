// Package cli wires commands to the request pipeline.
//
// Every command follows the same shape: register the shared flag set, resolve
// the effective options through Setup, and hand operations to an Executor.
// The executor owns the user-facing ceremony around a request: the progress
// spinner while an endpoint is contacted, rendering the response in the
// configured output format, and the short confirmation lines for mutating
// operations.
//
// # Core Components
//
// CommandFlags and RegisterCommonFlags define the flag surface shared by all
// API commands. ToOverrides converts only the flags the user actually set
// into a configuration overlay, so persisted settings keep working underneath.
//
// Setup resolves the configuration layers for one invocation: compiled
// defaults, the persisted config.yaml, MARVIN_* environment variables, and
// finally the flags.
//
// Executor dispatches operations and renders responses. It never decides
// exit codes; errors travel up to the command layer untouched.
//
// QuickAdd runs the interactive capture loop where every line becomes a task.
package cli
