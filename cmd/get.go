package cmd

import (
	"net/url"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var getFlags cli.CommandFlags

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Read a database document by ID",
	Long: `Read any document from the Marvin database by its ID.

This needs the full access token; the regular API token cannot read
arbitrary documents.

Examples:
  marvin get 7f3d2a1c
  marvin get 7f3d2a1c -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	cli.RegisterCommonFlags(getCmd, &getFlags)
}

func runGet(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &getFlags)
	if err != nil {
		return err
	}

	query := url.Values{"id": {args[0]}}
	return executor.Execute(cmd.Context(), api.OpGetDoc, nil, "", query)
}
