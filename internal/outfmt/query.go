package outfmt

import (
	"encoding/json"
	"io"

	"github.com/popcat/popcat-go/internal/filter"
)

// WriteJSONFiltered writes JSON with optional jq filtering. When jsonl is
// true the result is written as a single line.
func WriteJSONFiltered(w io.Writer, v any, query string, jsonl bool) error {
	if query != "" {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		filtered, err := filter.ApplyFromJSON(data, query)
		if err != nil {
			return err
		}
		v = filtered
	}

	if jsonl {
		return WriteJSONL(w, v)
	}
	return WriteJSON(w, v)
}
