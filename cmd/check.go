package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
	"marvin/internal/config"
)

var checkFlags cli.CommandFlags

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connectivity and the API token",
	Long: `Verify that Marvin is reachable and the configured API token is
accepted. With the default target this tries the desktop app first and
falls back to the public API, reporting which one answered.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	cli.RegisterCommonFlags(checkCmd, &checkFlags)
}

func runCheck(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &checkFlags)
	if err != nil {
		return err
	}

	resp, err := executor.Dispatch(cmd.Context(), api.OpTest, nil, "", nil)
	if err != nil {
		return err
	}

	options := executor.Options()
	if options.Quiet {
		return nil
	}

	out := cmd.OutOrStdout()
	if options.Target == config.TargetAuto && resp.Endpoint == options.PublicURL {
		fmt.Fprintln(out, cli.FormatWarning("Desktop app not reachable, using the public API"))
	}
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Token accepted by %s", resp.Endpoint)))
	return nil
}
