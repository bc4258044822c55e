package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/config"
)

// Exit codes for CLI commands. These follow the documented conventions so
// scripts can distinguish failure classes without parsing stderr.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid
	// arguments, or the service rejected the request).
	ExitCodeError = 1
	// ExitCodeConfig indicates the configuration is invalid or incomplete.
	ExitCodeConfig = 2
	// ExitCodeConnection indicates no configured endpoint could be reached.
	ExitCodeConnection = 3
)

// rootCmd represents the base command for the marvin application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "marvin",
	Short: "Talk to Amazing Marvin from the command line",
	Long: `marvin drives the Amazing Marvin task manager from the terminal.
Commands go to the local desktop app when it is running and fall back
to the public API automatically, so the same invocation works on and
off the machine Marvin runs on.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "marvin version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var configErr *config.ConfigurationError
	if errors.As(err, &configErr) {
		return ExitCodeConfig
	}

	var connErr *api.ConnectionError
	if errors.As(err, &connErr) {
		return ExitCodeConnection
	}

	// Status errors, classification errors, and everything else are
	// ordinary failures.
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
