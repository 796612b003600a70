package inline

import (
	"encoding/json"
	"io"

	"github.com/kinotv/kino/source"
)

type Result struct {
	Entry source.CatalogEntry `json:"entry"`
	// Detail is filled only when a single entry was picked.
	Detail *source.DetailRecord `json:"detail,omitempty"`
}

type Output struct {
	Query  string    `json:"query"`
	Result []*Result `json:"result"`
}

// Encode writes v as indented JSON followed by a newline.
func Encode(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJson(out io.Writer, query string, results []*Result) error {
	if results == nil {
		results = make([]*Result, 0)
	}
	return Encode(out, &Output{Query: query, Result: results})
}
