package formatting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	pkgstrings "marvin/pkg/strings"
)

// columnPriority orders item listing columns. Marvin documents carry far more
// fields than fit a terminal; these come first and the rest spill in
// alphabetically up to maxTableColumns.
var columnPriority = []string{"title", "day", "dueDate", "timeEstimate", "done", "_id"}

// maxTableColumns caps how wide an item listing may grow.
const maxTableColumns = 8

// TextRenderer provides rich table output for humans. JSON arrays of objects
// become item tables, single objects become property listings, and non-JSON
// bodies pass through untouched.
type TextRenderer struct {
	noHeaders bool
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{noHeaders: opts.NoHeaders}
}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, body []byte) error {
	doc, ok := decodeBody(body)
	if !ok {
		return writeRaw(w, body)
	}

	switch d := doc.(type) {
	case []interface{}:
		rows, tabular := objectRows(d)
		if !tabular {
			return renderItemList(w, d)
		}
		if len(rows) == 0 {
			_, err := fmt.Fprintf(w, "%s %s\n", text.FgYellow.Sprint("📋"), text.FgYellow.Sprint("No items found"))
			return err
		}
		return r.renderItemTable(w, rows)
	case map[string]interface{}:
		return r.renderProperties(w, d)
	default:
		_, err := fmt.Fprintf(w, "%v\n", d)
		return err
	}
}

// renderItemTable formats an array of objects as one row per item.
func (r *TextRenderer) renderItemTable(w io.Writer, rows []map[string]interface{}) error {
	t := newTable(w)

	cols := tableColumns(rows)
	if !r.noHeaders {
		header := make(table.Row, 0, len(cols))
		for _, col := range cols {
			header = append(header, text.FgHiCyan.Sprint(col))
		}
		t.AppendHeader(header)
	}

	for _, row := range rows {
		t.AppendRow(valueRow(cols, row, formatCell))
	}

	t.Render()
	return nil
}

// renderProperties formats a single object as property/value pairs.
func (r *TextRenderer) renderProperties(w io.Writer, doc map[string]interface{}) error {
	t := newTable(w)

	if !r.noHeaders {
		t.AppendHeader(table.Row{
			text.FgHiCyan.Sprint("PROPERTY"),
			text.FgHiCyan.Sprint("VALUE"),
		})
	}

	for _, key := range sortedKeys(doc) {
		t.AppendRow(table.Row{key, formatCell(doc[key])})
	}

	t.Render()
	return nil
}

// renderItemList handles arrays that are not uniformly objects.
func renderItemList(w io.Writer, items []interface{}) error {
	for i, item := range items {
		if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, formatCell(item)); err != nil {
			return err
		}
	}
	return nil
}

// decodeBody parses body as a JSON document. Numbers decode as json.Number so
// millisecond timestamps survive formatting without float rounding. Scalar
// bodies are not decoded; they render as raw passthrough.
func decodeBody(body []byte) (interface{}, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}
	return doc, true
}

// objectRows reports whether every array element is an object, returning the
// rows when so. An empty array counts as tabular.
func objectRows(items []interface{}) ([]map[string]interface{}, bool) {
	rows := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, false
		}
		rows = append(rows, obj)
	}
	return rows, true
}

// tableColumns picks the columns for an item table: priority columns in their
// fixed order, then the remaining keys alphabetically, capped at
// maxTableColumns.
func tableColumns(rows []map[string]interface{}) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for key := range row {
			seen[key] = true
		}
	}

	cols := make([]string, 0, len(seen))
	for _, key := range columnPriority {
		if seen[key] {
			cols = append(cols, key)
			delete(seen, key)
		}
	}

	rest := make([]string, 0, len(seen))
	for key := range seen {
		rest = append(rest, key)
	}
	sort.Strings(rest)
	cols = append(cols, rest...)

	if len(cols) > maxTableColumns {
		cols = cols[:maxTableColumns]
	}
	return cols
}

// valueRow builds one table row, rendering each cell with the given cell
// function. Missing keys become empty cells.
func valueRow(cols []string, rowData map[string]interface{}, cell func(interface{}) string) table.Row {
	row := make(table.Row, 0, len(cols))
	for _, col := range cols {
		row = append(row, cell(rowData[col]))
	}
	return row
}

// formatCell renders one cell for human-readable output. Done flags show as
// checkmarks, nested structures collapse to compact JSON, and long values are
// truncated.
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "✓"
		}
		return ""
	case string:
		return truncateCell(val)
	case json.Number:
		return val.String()
	default:
		return truncateCell(jsonCell(val))
	}
}

// jsonCell collapses a nested value to compact JSON.
func jsonCell(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func truncateCell(s string) string {
	return pkgstrings.TruncateCell(s, pkgstrings.DefaultCellMaxLen)
}

func sortedKeys(doc map[string]interface{}) []string {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// newTable creates a new table with standard styling.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}
