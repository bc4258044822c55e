package cmd

import (
	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var labelsFlags cli.CommandFlags

// labelsCmd represents the labels command
var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the configured labels",
	Args:  cobra.NoArgs,
	RunE:  runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	cli.RegisterCommonFlags(labelsCmd, &labelsFlags)
}

func runLabels(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &labelsFlags)
	if err != nil {
		return err
	}

	return executor.Execute(cmd.Context(), api.OpLabels, nil, "", nil)
}
