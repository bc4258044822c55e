package formatting

import "io"

// JSONRenderer writes the response body exactly as the API produced it.
// Field order, whitespace, and number formatting are the server's; nothing is
// decoded and re-marshaled on the way through.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(w io.Writer, body []byte) error {
	return writeRaw(w, body)
}
