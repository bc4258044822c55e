package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"marvin/internal/api"
	"marvin/internal/cli"
	"marvin/internal/config"
)

var agendaFlags cli.CommandFlags

// agendaCmd represents the agenda command
var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show today's items and everything due",
	Long: `Show the day at a glance: the items scheduled for today and the
items that are due, fetched in parallel and printed as two sections.`,
	Args: cobra.NoArgs,
	RunE: runAgenda,
}

func init() {
	rootCmd.AddCommand(agendaCmd)

	cli.RegisterCommonFlags(agendaCmd, &agendaFlags)
}

func runAgenda(cmd *cobra.Command, args []string) error {
	executor, err := newCommandExecutor(cmd, &agendaFlags)
	if err != nil {
		return err
	}
	options := executor.Options()

	// The two fetches share one progress indicator, so the executor copies
	// used inside the group run quiet.
	background := *options
	background.Quiet = true
	fetcher := cli.NewExecutor(api.NewClient(rootCmd.Version), &background)

	var spin *spinner.Spinner
	if !options.Quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " Contacting Marvin..."
		spin.Start()
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	var today, due *api.Response
	g.Go(func() error {
		resp, err := fetcher.Dispatch(ctx, api.OpTodayItems, nil, "", nil)
		today = resp
		return err
	})
	g.Go(func() error {
		resp, err := fetcher.Dispatch(ctx, api.OpDueItems, nil, "", nil)
		due = resp
		return err
	})
	err = g.Wait()
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if options.OutputFormat == config.OutputFormatText {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, text.FgHiCyan.Sprint("Today"))
		if err := executor.Render(today); err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, text.FgHiCyan.Sprint("Due"))
		return executor.Render(due)
	}

	// Machine formats get one document. The bodies are spliced in verbatim
	// so the server's own JSON is preserved byte for byte.
	todayBody := bytes.TrimSpace(today.Body)
	dueBody := bytes.TrimSpace(due.Body)
	if json.Valid(todayBody) && json.Valid(dueBody) {
		merged := fmt.Sprintf(`{"today":%s,"due":%s}`, todayBody, dueBody)
		return executor.Render(&api.Response{
			StatusCode: http.StatusOK,
			Body:       []byte(merged),
			Endpoint:   today.Endpoint,
		})
	}

	if err := executor.Render(today); err != nil {
		return err
	}
	return executor.Render(due)
}
