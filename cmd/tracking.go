package cmd

import (
	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var trackingFlags cli.CommandFlags

// trackingCmd represents the tracking command
var trackingCmd = &cobra.Command{
	Use:   "tracking",
	Short: "Show the currently tracked item",
	Args:  cobra.NoArgs,
	RunE:  runTracking,
}

func init() {
	rootCmd.AddCommand(trackingCmd)

	cli.RegisterCommonFlags(trackingCmd, &trackingFlags)
}

func runTracking(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &trackingFlags)
	if err != nil {
		return err
	}

	return executor.Execute(cmd.Context(), api.OpTrackedItem, nil, "", nil)
}
