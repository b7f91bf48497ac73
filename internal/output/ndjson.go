package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/grammargen/internal/model"
)

// WriteNDJSON streams blocks as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, blocks []model.Block) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, b := range blocks {
		if err := enc.Encode(b); err != nil {
			return err
		}
	}
	return nil
}
