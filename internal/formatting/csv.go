package formatting

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// CSVRenderer renders the same tabular model as TextRenderer in CSV form for
// scripting. Cells stay complete and machine-readable: no truncation, no
// checkmarks, no colors.
type CSVRenderer struct {
	noHeaders bool
}

// NewCSVRenderer creates a new CSV renderer.
func NewCSVRenderer(opts Options) *CSVRenderer {
	return &CSVRenderer{noHeaders: opts.NoHeaders}
}

// Render implements Renderer.
func (r *CSVRenderer) Render(w io.Writer, body []byte) error {
	doc, ok := decodeBody(body)
	if !ok {
		return writeRaw(w, body)
	}

	switch d := doc.(type) {
	case []interface{}:
		rows, tabular := objectRows(d)
		if !tabular {
			for _, item := range d {
				if _, err := fmt.Fprintln(w, csvCell(item)); err != nil {
					return err
				}
			}
			return nil
		}
		if len(rows) == 0 {
			return nil
		}
		return r.renderRows(w, tableColumns(rows), rows)
	case map[string]interface{}:
		rows := make([]map[string]interface{}, 0, len(d))
		for _, key := range sortedKeys(d) {
			rows = append(rows, map[string]interface{}{
				"PROPERTY": key,
				"VALUE":    d[key],
			})
		}
		return r.renderRows(w, []string{"PROPERTY", "VALUE"}, rows)
	default:
		_, err := fmt.Fprintf(w, "%v\n", d)
		return err
	}
}

func (r *CSVRenderer) renderRows(w io.Writer, cols []string, rows []map[string]interface{}) error {
	t := newTable(w)

	if !r.noHeaders {
		header := make(table.Row, 0, len(cols))
		for _, col := range cols {
			header = append(header, col)
		}
		t.AppendHeader(header)
	}

	for _, row := range rows {
		t.AppendRow(valueRow(cols, row, csvCell))
	}

	t.RenderCSV()
	return nil
}

// csvCell renders one cell for CSV output.
func csvCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return jsonCell(val)
	}
}
