package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
)

// newCommandExecutor resolves the effective options for one invocation and
// wraps them in a dispatch executor. Called at the start of every RunE that
// talks to the API.
func newCommandExecutor(cmd *cobra.Command, flags *cli.CommandFlags) (*cli.Executor, error) {
	options, err := cli.Setup(cmd, flags)
	if err != nil {
		return nil, err
	}

	return cli.NewExecutor(api.NewClient(rootCmd.Version), options), nil
}

// readInput loads the body given via --file. The sentinel "-" reads stdin
// instead; the second return value reports that, because empty stdin and an
// empty file produce different error messages downstream.
func readInput(cmd *cobra.Command, file string) (string, bool, error) {
	switch file {
	case "":
		return "", false, nil
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", true, fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), true, nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), false, nil
	}
}
