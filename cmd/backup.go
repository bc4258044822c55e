package cmd

import (
	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var backupFlags cli.CommandFlags

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Ask the desktop app to write a local backup",
	Long: `Ask the Marvin desktop app to write a backup of its local database.

This only works against the desktop app; the public API has no local
database directory to back up.`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)

	cli.RegisterCommonFlags(backupCmd, &backupFlags)
}

func runBackup(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &backupFlags)
	if err != nil {
		return err
	}

	resp, err := executor.Dispatch(cmd.Context(), api.OpBackup, nil, "", nil)
	if err != nil {
		return err
	}

	return executor.Acknowledge(resp, "Backup written")
}
