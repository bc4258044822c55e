package cmd

import (
	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
	"marvin/internal/mcp"
)

var mcpFlags cli.CommandFlags

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve Marvin as MCP tools over stdio",
	Long: `Run an MCP server on stdin/stdout that exposes Marvin operations as
tools, so AI assistants can read and change the task list. Configure it
in the assistant as a stdio server running "marvin mcp".`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	cli.RegisterCommonFlags(mcpCmd, &mcpFlags)
}

func runMCP(cmd *cobra.Command, args []string) error {
	options, err := cli.Setup(cmd, &mcpFlags)
	if err != nil {
		return err
	}

	server := mcp.NewServer(api.NewClient(rootCmd.Version), options, rootCmd.Version)
	return server.Start(cmd.Context())
}
