package keywords

import (
	"github.com/phyten/grammargen/internal/model"
	"github.com/phyten/grammargen/internal/regexgen"
)

// Generate checks the lists for overlaps and renders one block per emitted
// list, in declaration order.
func Generate(lists []List) ([]model.Block, error) {
	if err := CheckDisjoint(lists); err != nil {
		return nil, err
	}
	blocks := make([]model.Block, 0, len(lists))
	for _, l := range lists {
		if l.CheckOnly {
			continue
		}
		literals := regexgen.SortByLength(l.Literals)
		blocks = append(blocks, model.Block{
			Category: l.Name,
			Pattern:  regexgen.Build(literals),
			Literals: literals,
		})
	}
	return blocks, nil
}
