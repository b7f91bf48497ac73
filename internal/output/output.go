package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/grammargen/internal/model"
)

// Formats lists the accepted values for the format setting, default first.
var Formats = []string{"text", "json", "yaml", "csv", "markdown"}

// CanonicalFormat lower-cases and validates a format name. Empty means text;
// "ndjson" and "md" are accepted aliases.
func CanonicalFormat(raw string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(raw))
	switch f {
	case "":
		return "text", nil
	case "ndjson":
		return "json", nil
	case "md":
		return "markdown", nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (want one of %s)", raw, strings.Join(Formats, "|"))
}

// Write renders blocks in the named format.
func Write(w io.Writer, format string, blocks []model.Block) error {
	f, err := CanonicalFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case "json":
		return WriteNDJSON(w, blocks)
	case "yaml":
		return WriteYAML(w, blocks)
	case "csv":
		return WriteCSV(w, blocks)
	case "markdown":
		return WriteMarkdownTable(w, blocks)
	default:
		return WriteText(w, blocks)
	}
}
