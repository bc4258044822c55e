// Package formatting renders API response bodies for the terminal.
//
// This package consolidates the output logic shared by the CLI commands and
// the quick add loop, providing one renderer per output format (json, csv,
// text, template). Renderers work on raw response bodies: the dispatch layer
// hands them whatever the API produced, and each renderer decides how much
// structure to impose on it.
package formatting

import (
	"io"

	"marvin/internal/config"
)

// Options configures a renderer for one invocation.
type Options struct {
	Format config.OutputFormat
	// Template is the Go template source, used when Format is template.
	Template string
	// NoHeaders omits header rows from text and csv output.
	NoHeaders bool
}

// Renderer writes one response body to w.
type Renderer interface {
	Render(w io.Writer, body []byte) error
}

// NewRenderer creates the appropriate renderer based on options.
func NewRenderer(opts Options) (Renderer, error) {
	switch opts.Format {
	case config.OutputFormatJSON:
		return NewJSONRenderer(), nil
	case config.OutputFormatCSV:
		return NewCSVRenderer(opts), nil
	case config.OutputFormatTemplate:
		return NewTemplateRenderer(opts.Template)
	case config.OutputFormatText:
		fallthrough
	default:
		return NewTextRenderer(opts), nil
	}
}

// writeRaw passes body through untouched, ensuring a trailing newline so the
// shell prompt never lands mid-line.
func writeRaw(w io.Writer, body []byte) error {
	if _, err := w.Write(body); err != nil {
		return err
	}
	if len(body) == 0 || body[len(body)-1] != '\n' {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
