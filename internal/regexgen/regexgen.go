// Package regexgen renders sets of literal tokens as whole-word alternation
// patterns for grammar documents.
package regexgen

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Boundary is the word-boundary anchor as it appears in a quoted grammar
// string (backslash doubled).
const Boundary = `\\b`

// SortByLength returns a copy of literals ordered by descending length in
// runes. Literals of equal length keep their input order.
func SortByLength(literals []string) []string {
	out := make([]string, len(literals))
	copy(out, literals)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}

// Alternation joins literals as individually grouped alternatives. Literal
// characters are not escaped.
func Alternation(literals []string) string {
	parts := make([]string, len(literals))
	for i, lit := range literals {
		parts[i] = "(" + lit + ")"
	}
	return strings.Join(parts, "|")
}

// Wrap anchors base on both sides with word boundaries.
func Wrap(base string) string {
	return Boundary + "(" + base + ")" + Boundary
}

// Build renders literals, already ordered by the caller, as a wrapped
// alternation.
func Build(literals []string) string {
	return Wrap(Alternation(literals))
}

// Unescape converts a rendered pattern back into the form a regex engine
// compiles, collapsing doubled backslashes.
func Unescape(pattern string) string {
	return strings.ReplaceAll(pattern, `\\`, `\`)
}

// UnmatchedLiteralError reports a literal that its own pattern does not
// match in full, typically because an earlier alternative wins first.
type UnmatchedLiteralError struct {
	Category string
	Literal  string
	Matched  string
}

func (e *UnmatchedLiteralError) Error() string {
	if e.Matched == "" {
		return fmt.Sprintf("%s: literal %q is not matched by its pattern", e.Category, e.Literal)
	}
	return fmt.Sprintf("%s: literal %q is shadowed (pattern matched %q)", e.Category, e.Literal, e.Matched)
}

// Verify compiles pattern with a backtracking engine and checks that every
// literal, on its own, is matched in full.
func Verify(category, pattern string, literals []string) error {
	re, err := regexp2.Compile(Unescape(pattern), regexp2.None)
	if err != nil {
		return fmt.Errorf("%s: compile pattern: %w", category, err)
	}
	for _, lit := range literals {
		m, err := re.FindStringMatch(lit)
		if err != nil {
			return fmt.Errorf("%s: match %q: %w", category, lit, err)
		}
		if m == nil {
			return &UnmatchedLiteralError{Category: category, Literal: lit}
		}
		if got := m.String(); got != lit {
			return &UnmatchedLiteralError{Category: category, Literal: lit, Matched: got}
		}
	}
	return nil
}
