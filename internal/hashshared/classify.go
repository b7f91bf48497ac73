// Package hashshared classifies the shared-name table of the standard
// library into highlighting categories.
package hashshared

import (
	"sort"

	"github.com/phyten/grammargen/internal/model"
	"github.com/phyten/grammargen/internal/regexgen"
)

// Groups holds the names collected per emitted category, in first-seen
// order, plus how many names landed on an absent target.
type Groups struct {
	Names    map[string][]string
	Filtered int
}

// Categories returns the category labels in lexicographic order.
func (g Groups) Categories() []string {
	out := make([]string, 0, len(g.Names))
	for c := range g.Names {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Classify assigns every entry to its category. The first entry whose value
// is neither numeric nor mapped aborts classification.
func Classify(entries []Entry, mapping Mapping) (Groups, error) {
	groups := Groups{Names: make(map[string][]string)}
	for _, e := range entries {
		key := e.Value
		if IsNumeric(key) {
			key = NumberKey
		}
		target, ok := mapping[key]
		if !ok {
			return Groups{}, &UnmappedValueError{Value: e.Value, Name: e.Name, Line: e.Line}
		}
		category, emitted := target.Category()
		if !emitted {
			groups.Filtered++
			continue
		}
		groups.Names[category] = append(groups.Names[category], e.Name)
	}
	return groups, nil
}

// Generate classifies entries and renders one block per category, sorted
// by label.
func Generate(entries []Entry, mapping Mapping) ([]model.Block, error) {
	groups, err := Classify(entries, mapping)
	if err != nil {
		return nil, err
	}
	return Render(groups), nil
}

// Render builds the blocks of already classified groups, sorted by label.
func Render(groups Groups) []model.Block {
	blocks := make([]model.Block, 0, len(groups.Names))
	for _, category := range groups.Categories() {
		literals := regexgen.SortByLength(groups.Names[category])
		blocks = append(blocks, model.Block{
			Category: category,
			Pattern:  regexgen.Build(literals),
			Literals: literals,
		})
	}
	return blocks
}
