package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"marvin/internal/api"
	"marvin/internal/cli"
	"marvin/internal/classify"
)

var (
	apiFlags      cli.CommandFlags
	apiFile       string
	apiFullAccess bool
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api <method> <path>",
	Short: "Call an API endpoint directly",
	Long: `Call any Marvin API endpoint and print the raw response. The path is
relative to the API root; a request body can be supplied via --file,
with "-" reading stdin. JSON bodies are sent as application/json,
anything else as text/plain.

Examples:
  marvin api GET /todayItems
  marvin api GET "/doc?id=7f3d2a1c" --full-access
  echo '{"title":"Buy milk"}' | marvin api POST /addTask --file -`,
	Args: cobra.ExactArgs(2),
	RunE: runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)

	cli.RegisterCommonFlags(apiCmd, &apiFlags)
	apiCmd.Flags().StringVarP(&apiFile, "file", "f", "", "Read the request body from this file (\"-\" for stdin)")
	apiCmd.Flags().BoolVar(&apiFullAccess, "full-access", false, "Authenticate with the full access token")
}

func runAPI(cmd *cobra.Command, args []string) error {
	method := strings.ToUpper(args[0])
	path := args[1]
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	content, _, err := readInput(cmd, apiFile)
	if err != nil {
		return err
	}

	var contentType string
	if content != "" {
		contentType = classify.ContentTypeText
		if json.Valid([]byte(content)) {
			contentType = classify.ContentTypeJSON
		}
	}

	executor, err := newCommandExecutor(cmd, &apiFlags)
	if err != nil {
		return err
	}

	op := api.Operation{
		Method:     method,
		Path:       path,
		Capability: api.Capability{RequiresFullAccess: apiFullAccess},
	}
	return executor.Execute(cmd.Context(), op, []byte(content), contentType, nil)
}
