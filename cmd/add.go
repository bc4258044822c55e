package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/classify"
	"marvin/internal/cli"
)

var (
	addFlags cli.CommandFlags
	addFile  string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [task|project] [title]",
	Short: "Create a task or project",
	Long: `Create a task or project in Amazing Marvin.

A single title creates a task. The keywords "task" and "project" select
the kind explicitly. With --file the content is sent instead: a JSON
document is forwarded verbatim (its "db" field picks the kind), anything
else becomes a plain-text task title. "-" reads from stdin.

Examples:
  marvin add "Buy milk +today"
  marvin add project "Spring cleaning"
  marvin add --file task.json
  echo "Buy milk" | marvin add --file -`,
	Args: cobra.MaximumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	cli.RegisterCommonFlags(addCmd, &addFlags)
	addCmd.Flags().StringVarP(&addFile, "file", "f", "", "Read the task or project from this file (\"-\" for stdin)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	content, fromStdin, err := readInput(cmd, addFile)
	if err != nil {
		return err
	}

	decision := classify.Decide(args, classify.Options{
		File:      addFile,
		FromStdin: fromStdin,
	}, content)

	switch decision.Action {
	case classify.ActionShowHelp:
		return cmd.Help()
	case classify.ActionError:
		// No request leaves the process on a classification error.
		return decision.Err()
	}

	executor, err := newCommandExecutor(cmd, &addFlags)
	if err != nil {
		return err
	}

	op := api.Operation{Method: http.MethodPost, Path: decision.Path}
	resp, err := executor.Dispatch(cmd.Context(), op, []byte(decision.Body), decision.ContentType, nil)
	if err != nil {
		return err
	}

	kind := "task"
	if decision.Action == classify.ActionCreateProject {
		kind = "project"
	}

	message := fmt.Sprintf("Added %s", kind)
	if title := cli.ResponseField(resp, "title"); title != "" {
		message = fmt.Sprintf("Added %s: %s", kind, title)
	}
	return executor.Acknowledge(resp, message)
}
