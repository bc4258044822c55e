package formatting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderCSV(t *testing.T, opts Options, body string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, NewCSVRenderer(opts).Render(&out, []byte(body)))
	return out.String()
}

func TestCSVRendererItemRows(t *testing.T) {
	body := `[
		{"_id":"t1","title":"Buy milk","done":false},
		{"_id":"t2","title":"Call dentist","done":true}
	]`

	out := renderCSV(t, Options{}, body)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, strings.ToLower(lines[0]), "title")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "false")
	assert.NotContains(t, out, "✓")
}

func TestCSVRendererNoHeaders(t *testing.T) {
	body := `[{"title":"Buy milk","done":false}]`

	out := renderCSV(t, Options{NoHeaders: true}, body)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 1)
	assert.NotContains(t, strings.ToLower(lines[0]), "title,")
	assert.Contains(t, lines[0], "Buy milk")
}

func TestCSVRendererDoesNotTruncate(t *testing.T) {
	long := strings.Repeat("x", 150)
	body := `[{"title":"wide","note":"` + long + `"}]`

	out := renderCSV(t, Options{}, body)

	assert.Contains(t, out, long)
	assert.NotContains(t, out, "...")
}

func TestCSVRendererNumbersKeepFullPrecision(t *testing.T) {
	body := `[{"title":"Buy milk","dueDate":1755820800000}]`

	out := renderCSV(t, Options{}, body)

	assert.Contains(t, out, "1755820800000")
	assert.NotContains(t, out, "e+")
}

func TestCSVRendererObjectAsPropertyRows(t *testing.T) {
	body := `{"_id":"t1","title":"Buy milk"}`

	out := renderCSV(t, Options{}, body)

	assert.Contains(t, out, "_id,t1")
	assert.Contains(t, out, "title,Buy milk")
}

func TestCSVRendererScalarArray(t *testing.T) {
	out := renderCSV(t, Options{}, `["inbox","work"]`)

	assert.Equal(t, "inbox\nwork\n", out)
}

func TestCSVRendererEmptyArray(t *testing.T) {
	out := renderCSV(t, Options{}, `[]`)

	assert.Empty(t, out)
}

func TestCSVRendererNonJSONPassesThrough(t *testing.T) {
	out := renderCSV(t, Options{}, "Marvin is running")

	assert.Equal(t, "Marvin is running\n", out)
}
