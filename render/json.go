package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/segfolia/sentence"
)

// JSONRenderer writes annotation docs as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the doc as indented JSON.
func (r *JSONRenderer) Render(doc sent.Doc) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
