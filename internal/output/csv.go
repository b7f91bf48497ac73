package output

import (
	"encoding/csv"
	"io"

	"github.com/phyten/grammargen/internal/model"
)

// WriteCSV renders blocks as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, blocks []model.Block) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write([]string{"Category", "Pattern"}); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := writer.Write([]string{b.Category, b.Pattern}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
