package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
	"marvin/internal/classify"
)

var doneFlags cli.CommandFlags

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done <itemId>",
	Short: "Mark a task or project done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)

	cli.RegisterCommonFlags(doneCmd, &doneFlags)
}

func runDone(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &doneFlags)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{"itemId": args[0]})
	if err != nil {
		return err
	}

	resp, err := executor.Dispatch(cmd.Context(), api.OpMarkDone, body, classify.ContentTypeJSON, nil)
	if err != nil {
		return err
	}

	message := "Marked done"
	if title := cli.ResponseField(resp, "title"); title != "" {
		message = fmt.Sprintf("Marked done: %s", title)
	}
	return executor.Acknowledge(resp, message)
}
