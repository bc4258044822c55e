package cli

import (
	"os"

	"github.com/spf13/cobra"

	"marvin/internal/config"
	"marvin/pkg/logging"
)

// Setup resolves the effective options for one command invocation. Logging is
// initialized first so configuration loading itself can emit debug lines,
// then the persisted config is loaded and merged with the environment and
// flag overlays.
func Setup(cmd *cobra.Command, flags *CommandFlags) (*config.Options, error) {
	level := logging.LevelWarn
	if flags.Debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	file, err := config.LoadFileConfig(configPath)
	if err != nil {
		return nil, err
	}

	return config.Resolve(file, config.EnvOverrides(), flags.ToOverrides(cmd))
}
