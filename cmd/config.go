package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marvin/internal/config"
)

var configPathFlag string

// configSetting binds one config.yaml key to its accessors. Validation
// happens on set so a bad enum never reaches the file.
type configSetting struct {
	get    func(*config.FileConfig) string
	set    func(*config.FileConfig, string) error
	unset  func(*config.FileConfig)
	secret bool
}

// configSettingNames fixes the listing order.
var configSettingNames = []string{
	"apiToken",
	"fullAccessToken",
	"target",
	"outputFormat",
	"desktopUrl",
	"publicUrl",
	"quiet",
}

var configSettings = map[string]configSetting{
	"apiToken": {
		get:    func(f *config.FileConfig) string { return f.APIToken },
		set:    func(f *config.FileConfig, v string) error { f.APIToken = v; return nil },
		unset:  func(f *config.FileConfig) { f.APIToken = "" },
		secret: true,
	},
	"fullAccessToken": {
		get:    func(f *config.FileConfig) string { return f.FullAccessToken },
		set:    func(f *config.FileConfig, v string) error { f.FullAccessToken = v; return nil },
		unset:  func(f *config.FileConfig) { f.FullAccessToken = "" },
		secret: true,
	},
	"target": {
		get: func(f *config.FileConfig) string { return f.Target },
		set: func(f *config.FileConfig, v string) error {
			if _, err := config.ParseTarget(v); err != nil {
				return err
			}
			f.Target = v
			return nil
		},
		unset: func(f *config.FileConfig) { f.Target = "" },
	},
	"outputFormat": {
		get: func(f *config.FileConfig) string { return f.OutputFormat },
		set: func(f *config.FileConfig, v string) error {
			if _, err := config.ParseOutputFormat(v); err != nil {
				return err
			}
			f.OutputFormat = v
			return nil
		},
		unset: func(f *config.FileConfig) { f.OutputFormat = "" },
	},
	"desktopUrl": {
		get:   func(f *config.FileConfig) string { return f.DesktopURL },
		set:   func(f *config.FileConfig, v string) error { f.DesktopURL = v; return nil },
		unset: func(f *config.FileConfig) { f.DesktopURL = "" },
	},
	"publicUrl": {
		get:   func(f *config.FileConfig) string { return f.PublicURL },
		set:   func(f *config.FileConfig, v string) error { f.PublicURL = v; return nil },
		unset: func(f *config.FileConfig) { f.PublicURL = "" },
	},
	"quiet": {
		get: func(f *config.FileConfig) string {
			if f.Quiet == nil {
				return ""
			}
			return strconv.FormatBool(*f.Quiet)
		},
		set: func(f *config.FileConfig, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return config.NewConfigurationError("quiet", v, "must be true or false")
			}
			f.Quiet = &b
			return nil
		},
		unset: func(f *config.FileConfig) { f.Quiet = nil },
	},
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the persisted configuration",
	Long: fmt.Sprintf(`Manage the configuration persisted in config.yaml.

Settings: %s

Examples:
  marvin config set apiToken <token>
  marvin config set target desktop
  marvin config get outputFormat
  marvin config unset quiet
  marvin config list
  marvin config path`, strings.Join(configSettingNames, ", ")),
}

var configGetCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Print a persisted setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a persisted setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <setting>",
	Short: "Remove a persisted setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the persisted settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)

	configCmd.PersistentFlags().StringVar(&configPathFlag, "config-path", "", "Configuration directory (default ~/.config/marvin)")
}

func configDir() string {
	if configPathFlag != "" {
		return configPathFlag
	}
	return config.GetDefaultConfigPathOrPanic()
}

func lookupConfigSetting(name string) (configSetting, error) {
	setting, ok := configSettings[name]
	if !ok {
		return configSetting{}, fmt.Errorf("unknown setting %q, expected one of: %s",
			name, strings.Join(configSettingNames, ", "))
	}
	return setting, nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	setting, err := lookupConfigSetting(args[0])
	if err != nil {
		return err
	}

	file, err := config.LoadFileConfig(configDir())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), setting.get(file))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	setting, err := lookupConfigSetting(args[0])
	if err != nil {
		return err
	}

	dir := configDir()
	file, err := config.LoadFileConfig(dir)
	if err != nil {
		return err
	}

	if err := setting.set(file, args[1]); err != nil {
		return err
	}

	return config.SaveFileConfig(dir, file)
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	setting, err := lookupConfigSetting(args[0])
	if err != nil {
		return err
	}

	dir := configDir()
	file, err := config.LoadFileConfig(dir)
	if err != nil {
		return err
	}

	setting.unset(file)
	return config.SaveFileConfig(dir, file)
}

func runConfigList(cmd *cobra.Command, args []string) error {
	file, err := config.LoadFileConfig(configDir())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range configSettingNames {
		setting := configSettings[name]
		value := setting.get(file)
		if setting.secret && value != "" {
			value = "<set>"
		}
		if value == "" {
			value = "<not set>"
		}
		fmt.Fprintf(out, "%-16s %s\n", name+":", value)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFilePath(configDir()))
	return nil
}
