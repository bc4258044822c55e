package cli

import (
	"github.com/spf13/cobra"

	"marvin/internal/config"
)

// CommandFlags holds the flag values shared by every command that talks to
// the API. Each command owns its own copy so command state never bleeds
// between tests.
type CommandFlags struct {
	Output          string
	Template        string
	NoHeaders       bool
	Quiet           bool
	Debug           bool
	ConfigPath      string
	Desktop         bool
	Public          bool
	APIToken        string
	FullAccessToken string
}

// RegisterCommonFlags registers the shared flag set on a command. The
// --desktop and --public switches are mutually exclusive; both pin the
// invocation to one of the two APIs.
func RegisterCommonFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "text", "Output format: json, csv, text, or template")
	cmd.Flags().StringVar(&flags.Template, "template", "", "Go template for --output=template (implies it when set)")
	cmd.Flags().BoolVar(&flags.NoHeaders, "no-headers", false, "Omit header rows from text and csv output")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress and confirmation output")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&flags.ConfigPath, "config-path", "", "Directory holding config.yaml (default ~/.config/marvin)")
	cmd.Flags().BoolVar(&flags.Desktop, "desktop", false, "Only contact the desktop app API")
	cmd.Flags().BoolVar(&flags.Public, "public", false, "Only contact the public cloud API")
	cmd.Flags().StringVar(&flags.APIToken, "api-token", "", "API token, overriding the configured one")
	cmd.Flags().StringVar(&flags.FullAccessToken, "full-access-token", "", "Full access token, overriding the configured one")

	cmd.MarkFlagsMutuallyExclusive("desktop", "public")
}

// ToOverrides converts the flags the user actually set into a configuration
// overlay. Unset flags stay nil so the layers below keep their values, and
// cobra's change tracking makes an explicit --quiet=false override a
// persisted quiet: true.
func (f *CommandFlags) ToOverrides(cmd *cobra.Command) config.Overrides {
	var overrides config.Overrides

	if cmd.Flags().Changed("output") {
		overrides.OutputFormat = &f.Output
	}
	if cmd.Flags().Changed("api-token") {
		overrides.APIToken = &f.APIToken
	}
	if cmd.Flags().Changed("full-access-token") {
		overrides.FullAccessToken = &f.FullAccessToken
	}
	if cmd.Flags().Changed("quiet") {
		overrides.Quiet = &f.Quiet
	}
	if f.Desktop {
		target := string(config.TargetDesktop)
		overrides.Target = &target
	}
	if f.Public {
		target := string(config.TargetPublic)
		overrides.Target = &target
	}

	// A template without an explicit --output selects template output.
	if f.Template != "" && !cmd.Flags().Changed("output") {
		format := string(config.OutputFormatTemplate)
		overrides.OutputFormat = &format
	}

	overrides.Template = f.Template
	overrides.Debug = f.Debug
	overrides.NoHeaders = f.NoHeaders
	return overrides
}
