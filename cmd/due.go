package cmd

import (
	"net/url"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var (
	dueFlags cli.CommandFlags
	dueBy    string
)

// dueCmd represents the due command
var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List the items that are due",
	Long: `List the tasks and projects with a due date.

Examples:
  marvin due
  marvin due --by 2026-08-31`,
	Args: cobra.NoArgs,
	RunE: runDue,
}

func init() {
	rootCmd.AddCommand(dueCmd)

	cli.RegisterCommonFlags(dueCmd, &dueFlags)
	dueCmd.Flags().StringVar(&dueBy, "by", "", "Only items due by this day (YYYY-MM-DD)")
}

func runDue(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &dueFlags)
	if err != nil {
		return err
	}

	var query url.Values
	if dueBy != "" {
		query = url.Values{"by": {dueBy}}
	}

	return executor.Execute(cmd.Context(), api.OpDueItems, nil, "", query)
}
