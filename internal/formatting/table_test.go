package formatting

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderText(t *testing.T, opts Options, body string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(opts).Render(&out, []byte(body)))
	return out.String()
}

func TestTextRendererItemTable(t *testing.T) {
	body := `[
		{"_id":"t1","title":"Buy milk","day":"2026-08-22","done":false},
		{"_id":"t2","title":"Call dentist","day":"2026-08-22","done":true}
	]`

	out := renderText(t, Options{}, body)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "Call dentist")
	assert.Contains(t, out, "✓")
}

func TestTextRendererPriorityColumnsComeFirst(t *testing.T) {
	body := `[{"note":"long form notes","title":"Buy milk","done":false}]`

	out := renderText(t, Options{}, body)

	title := strings.Index(out, "TITLE")
	note := strings.Index(out, "NOTE")
	require.GreaterOrEqual(t, title, 0)
	require.GreaterOrEqual(t, note, 0)
	assert.Less(t, title, note, "priority columns should precede spill columns")
}

func TestTextRendererCapsColumnCount(t *testing.T) {
	body := `[{
		"title":"wide","c01":1,"c02":2,"c03":3,"c04":4,"c05":5,"c06":6,"c07":7,"c08":8,"c09":9
	}]`

	out := renderText(t, Options{}, body)

	assert.Contains(t, out, "C01")
	assert.Contains(t, out, "C07")
	assert.NotContains(t, out, "C08")
	assert.NotContains(t, out, "C09")
}

func TestTextRendererNoHeaders(t *testing.T) {
	body := `[{"title":"Buy milk","done":false}]`

	out := renderText(t, Options{NoHeaders: true}, body)

	assert.NotContains(t, out, "TITLE")
	assert.Contains(t, out, "Buy milk")
}

func TestTextRendererObjectAsProperties(t *testing.T) {
	body := `{"_id":"t1","title":"Buy milk","timeEstimate":1800000}`

	out := renderText(t, Options{}, body)

	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "Buy milk")
}

func TestTextRendererNumbersKeepFullPrecision(t *testing.T) {
	// Millisecond timestamps must not round-trip through float64.
	body := `[{"title":"Buy milk","dueDate":1755820800000,"timeEstimate":1800000}]`

	out := renderText(t, Options{}, body)

	assert.Contains(t, out, "1755820800000")
	assert.Contains(t, out, "1800000")
	assert.NotContains(t, out, "e+")
}

func TestTextRendererNestedValuesCollapse(t *testing.T) {
	body := `{"title":"Buy milk","labelIds":["l1","l2"]}`

	out := renderText(t, Options{}, body)

	assert.Contains(t, out, `["l1","l2"]`)
}

func TestTextRendererTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 150)
	body := `{"note":"` + long + `"}`

	out := renderText(t, Options{}, body)

	assert.Contains(t, out, strings.Repeat("x", 97)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 98))
}

func TestTextRendererEmptyArray(t *testing.T) {
	out := renderText(t, Options{}, `[]`)

	assert.Contains(t, out, "No items found")
}

func TestTextRendererMixedArrayAsList(t *testing.T) {
	out := renderText(t, Options{}, `["inbox","work",3]`)

	assert.Contains(t, out, "  1. inbox")
	assert.Contains(t, out, "  2. work")
	assert.Contains(t, out, "  3. 3")
}

func TestTextRendererNonJSONPassesThrough(t *testing.T) {
	out := renderText(t, Options{}, "Marvin is running")

	assert.Equal(t, "Marvin is running\n", out)
}

func TestTextRendererMalformedJSONPassesThrough(t *testing.T) {
	out := renderText(t, Options{}, `{"title": unterminated`)

	assert.Equal(t, `{"title": unterminated`+"\n", out)
}
