package formatting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"marvin/internal/config"
)

// TemplateRenderer executes a user-supplied Go template over the decoded
// response body. The sprig function map is loaded, so pipelines like
// {{range .}}{{.title | upper}}{{"\n"}}{{end}} work out of the box.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses the template source. A missing or invalid
// template is a configuration error; the invocation cannot render anything
// without one.
func NewTemplateRenderer(source string) (*TemplateRenderer, error) {
	if source == "" {
		return nil, config.NewConfigurationError("template", "",
			"output format 'template' requires --template")
	}

	tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(source)
	if err != nil {
		return nil, &config.ConfigurationError{
			Setting: "template",
			Value:   source,
			Message: fmt.Sprintf("invalid template: %v", err),
			Err:     err,
		}
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

// Render implements Renderer. JSON bodies are decoded so the template sees
// maps and slices; anything else is handed over as a plain string.
func (r *TemplateRenderer) Render(w io.Writer, body []byte) error {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		doc = string(body)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return writeRaw(w, buf.Bytes())
}
