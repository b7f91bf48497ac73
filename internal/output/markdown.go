package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/grammargen/internal/model"
)

// WriteMarkdownTable renders blocks as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, blocks []model.Block) error {
	if _, err := fmt.Fprint(w, "| Category | Pattern |\n| --- | --- |\n"); err != nil {
		return err
	}
	for _, b := range blocks {
		if _, err := fmt.Fprintf(w, "| %s | `%s` |\n", escapeMarkdownCell(b.Category), escapeMarkdownCell(b.Pattern)); err != nil {
			return err
		}
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "<br>")
	s = strings.ReplaceAll(s, "|", "\\|")
	return s
}
