package output

import (
	"bufio"
	"io"

	"github.com/phyten/grammargen/internal/model"
)

// WriteText renders each block as three lines: category, pattern and a
// blank separator.
func WriteText(w io.Writer, blocks []model.Block) error {
	bw := bufio.NewWriter(w)
	for _, b := range blocks {
		if _, err := bw.WriteString(b.Category + "\n"); err != nil {
			return err
		}
		if _, err := bw.WriteString(b.Pattern + "\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
