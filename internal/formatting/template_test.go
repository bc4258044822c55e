package formatting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marvin/internal/config"
)

func renderTemplate(t *testing.T, source, body string) string {
	t.Helper()
	r, err := NewTemplateRenderer(source)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, r.Render(&out, []byte(body)))
	return out.String()
}

func TestTemplateRendererOverArray(t *testing.T) {
	body := `[{"title":"Buy milk"},{"title":"Call dentist"}]`

	out := renderTemplate(t, `{{range .}}{{.title}}{{"\n"}}{{end}}`, body)

	assert.Equal(t, "Buy milk\nCall dentist\n", out)
}

func TestTemplateRendererSprigFunctions(t *testing.T) {
	body := `{"title":"buy milk"}`

	out := renderTemplate(t, `{{.title | upper}}`, body)

	assert.Equal(t, "BUY MILK\n", out)
}

func TestTemplateRendererNumbersKeepFullPrecision(t *testing.T) {
	body := `{"dueDate":1755820800000}`

	out := renderTemplate(t, `{{.dueDate}}`, body)

	assert.Equal(t, "1755820800000\n", out)
}

func TestTemplateRendererNonJSONBodyIsString(t *testing.T) {
	out := renderTemplate(t, `{{.}}`, "Marvin is running")

	assert.Equal(t, "Marvin is running\n", out)
}

func TestTemplateRendererAddsFinalNewlineOnce(t *testing.T) {
	out := renderTemplate(t, `{{.title}}{{"\n"}}`, `{"title":"Buy milk"}`)

	assert.Equal(t, "Buy milk\n", out)
}

func TestNewTemplateRendererRejectsInvalidSource(t *testing.T) {
	_, err := NewTemplateRenderer(`{{range .}`)
	require.Error(t, err)

	var configErr *config.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "template", configErr.Setting)
}

func TestTemplateRendererExecutionError(t *testing.T) {
	r, err := NewTemplateRenderer(`{{range .missing}}{{.x}}{{end}}`)
	require.NoError(t, err)

	var out bytes.Buffer
	err = r.Render(&out, []byte(`"not an object"`))
	assert.Error(t, err)
}
