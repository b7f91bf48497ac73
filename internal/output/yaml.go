package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/phyten/grammargen/internal/model"
)

// WriteYAML renders blocks as a YAML sequence of category/pattern pairs.
func WriteYAML(w io.Writer, blocks []model.Block) error {
	if blocks == nil {
		blocks = []model.Block{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(blocks); err != nil {
		return err
	}
	return enc.Close()
}
