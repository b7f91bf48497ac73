package model

import "unicode/utf8"

// Block is one emitted category: its label and the rendered pattern.
type Block struct {
	Category string   `json:"category" yaml:"category"`
	Pattern  string   `json:"pattern" yaml:"pattern"`
	Literals []string `json:"-" yaml:"-"`
}

// Longest returns the first literal of maximal rune length.
func (b Block) Longest() string {
	longest := ""
	n := -1
	for _, lit := range b.Literals {
		if c := utf8.RuneCountInString(lit); c > n {
			longest, n = lit, c
		}
	}
	return longest
}
