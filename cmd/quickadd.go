package cmd

import (
	"github.com/spf13/cobra"

	"marvin/internal/cli"
)

var (
	quickaddFlags       cli.CommandFlags
	quickaddStopOnError bool
)

// quickaddCmd represents the quickadd command
var quickaddCmd = &cobra.Command{
	Use:   "quickadd",
	Short: "Add tasks interactively, one per line",
	Long: `Open an interactive prompt that creates one task per entered line.

Lines go straight to Marvin as task titles, so shorthand like "+today"
or "@label" works the way it does in the app's quick add box. History
is kept across the session; Ctrl-D, "exit", or "quit" ends it.`,
	Args: cobra.NoArgs,
	RunE: runQuickAdd,
}

func init() {
	rootCmd.AddCommand(quickaddCmd)

	cli.RegisterCommonFlags(quickaddCmd, &quickaddFlags)
	quickaddCmd.Flags().BoolVar(&quickaddStopOnError, "stop-on-error", false, "Stop at the first line that fails instead of continuing")
}

func runQuickAdd(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &quickaddFlags)
	if err != nil {
		return err
	}

	return cli.QuickAdd(cmd.Context(), executor, quickaddStopOnError)
}
