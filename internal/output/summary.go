package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phyten/grammargen/internal/model"
	"github.com/phyten/grammargen/internal/termcolor"
	"github.com/phyten/grammargen/internal/textutil"
)

const longestWidth = 40

// WriteSummary prints one aligned row per block: category, literal count and
// the longest literal (truncated). Meant for stderr.
func WriteSummary(w io.Writer, blocks []model.Block, p termcolor.Palette) error {
	rows := make([][]string, 0, len(blocks)+1)
	rows = append(rows, []string{p.Header("CATEGORY"), p.Header("COUNT"), p.Header("LONGEST")})
	total := 0
	for _, b := range blocks {
		total += len(b.Literals)
		rows = append(rows, []string{
			p.Category(b.Category),
			strconv.Itoa(len(b.Literals)),
			textutil.TruncateByWidth(b.Longest(), longestWidth, "…"),
		})
	}
	for _, line := range textutil.Align(rows, 2, 1) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, p.Dim(fmt.Sprintf("%d categories, %d literals", len(blocks), total)))
	return err
}
