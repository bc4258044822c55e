package cli

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"

	"marvin/internal/api"
	"marvin/internal/config"
	"marvin/internal/formatting"
)

// Executor runs API operations for commands. It resolves the endpoint
// candidates and credential for each operation, dispatches the request with
// progress feedback, and renders the response in the configured output
// format.
type Executor struct {
	client  *api.Client
	options *config.Options
	stdout  io.Writer
	stderr  io.Writer
}

// NewExecutor creates an executor bound to the resolved options.
func NewExecutor(client *api.Client, options *config.Options) *Executor {
	return &Executor{
		client:  client,
		options: options,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// SetOutput redirects the executor's streams. Commands keep the defaults;
// tests capture them.
func (e *Executor) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// Options returns the resolved options the executor runs under.
func (e *Executor) Options() *config.Options {
	return e.options
}

// Dispatch sends one operation through the endpoint chain and returns the
// response. The wait gets a spinner unless quiet mode is on. Errors come back
// undecorated for the command layer to map to exit codes; only the failure
// marker is printed here.
func (e *Executor) Dispatch(ctx context.Context, op api.Operation, body []byte, contentType string, query url.Values) (*api.Response, error) {
	credential, err := api.CredentialFor(e.options, op.Capability)
	if err != nil {
		return nil, err
	}

	req := api.Request{
		Method:      op.Method,
		Path:        op.Path,
		Query:       query,
		Body:        body,
		ContentType: contentType,
		Candidates:  api.Candidates(e.options, op.Capability),
		Credential:  credential,
	}

	var s *spinner.Spinner
	if !e.options.Quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Contacting Marvin..."
		s.Start()
	}

	resp, err := e.client.Do(ctx, req)

	if s != nil {
		s.Stop()
	}

	if err != nil {
		// Don't print the error here - cobra will print the returned error
		if !e.options.Quiet {
			fmt.Fprintln(e.stderr, text.FgRed.Sprint("❌ Request failed"))
		}
		return nil, err
	}

	return resp, nil
}

// Execute dispatches an operation and renders the response body to stdout.
func (e *Executor) Execute(ctx context.Context, op api.Operation, body []byte, contentType string, query url.Values) error {
	resp, err := e.Dispatch(ctx, op, body, contentType, query)
	if err != nil {
		return err
	}
	return e.Render(resp)
}

// Render writes a response in the configured output format.
func (e *Executor) Render(resp *api.Response) error {
	renderer, err := formatting.NewRenderer(formatting.Options{
		Format:    e.options.OutputFormat,
		Template:  e.options.Template,
		NoHeaders: e.options.NoHeaders,
	})
	if err != nil {
		return err
	}
	return renderer.Render(e.stdout, resp.Body)
}

// Acknowledge prints a short confirmation for a mutating operation in text
// mode, suppressed by quiet. Other output formats render the full response
// body instead so scripts keep the created document.
func (e *Executor) Acknowledge(resp *api.Response, message string) error {
	if e.options.OutputFormat != config.OutputFormatText {
		return e.Render(resp)
	}
	if e.options.Quiet {
		return nil
	}
	_, err := fmt.Fprintln(e.stdout, FormatSuccess(message))
	return err
}
