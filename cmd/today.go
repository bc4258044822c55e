package cmd

import (
	"net/url"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var (
	todayFlags cli.CommandFlags
	todayDate  string
)

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List the items scheduled for today",
	Long: `List the tasks and projects scheduled for today.

Examples:
  marvin today
  marvin today --date 2026-08-23
  marvin today -o json`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)

	cli.RegisterCommonFlags(todayCmd, &todayFlags)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "List this day instead of today (YYYY-MM-DD)")
}

func runToday(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &todayFlags)
	if err != nil {
		return err
	}

	var query url.Values
	if todayDate != "" {
		query = url.Values{"date": {todayDate}}
	}

	return executor.Execute(cmd.Context(), api.OpTodayItems, nil, "", query)
}
