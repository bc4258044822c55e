package cmd

import (
	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

var projectsFlags cli.CommandFlags

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects and categories",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)

	cli.RegisterCommonFlags(projectsCmd, &projectsFlags)
}

func runProjects(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &projectsFlags)
	if err != nil {
		return err
	}

	return executor.Execute(cmd.Context(), api.OpCategories, nil, "", nil)
}
