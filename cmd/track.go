package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
	"marvin/internal/classify"
)

var trackFlags cli.CommandFlags

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track start|stop <taskId>",
	Short: "Start or stop time tracking for a task",
	Long: `Start or stop time tracking for a task.

Examples:
  marvin track start 7f3d2a1c
  marvin track stop 7f3d2a1c`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{"start", "stop"}, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)

	cli.RegisterCommonFlags(trackCmd, &trackFlags)
}

func runTrack(cmd *cobra.Command, args []string) error {
	action := strings.ToLower(args[0])
	taskID := args[1]
	if action != "start" && action != "stop" {
		return fmt.Errorf("unknown action %q, expected start or stop", args[0])
	}

	executor, err := newCommandExecutor(cmd, &trackFlags)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{
		"taskId": taskID,
		"action": strings.ToUpper(action),
	})
	if err != nil {
		return err
	}

	resp, err := executor.Dispatch(cmd.Context(), api.OpTrack, body, classify.ContentTypeJSON, nil)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Started tracking %s", taskID)
	if action == "stop" {
		message = fmt.Sprintf("Stopped tracking %s", taskID)
	}
	return executor.Acknowledge(resp, message)
}
