// Package keywords renders the hand-maintained language keyword lists.
package keywords

// List is one named keyword category. CheckOnly lists take part in the
// disjointness check but produce no block.
type List struct {
	Name      string
	Literals  []string
	CheckOnly bool
}

// DefaultLists returns the Power Query keyword categories in emission
// order. The hash keywords (#binary, #date, ...) are highlighted by their
// own rule; they are listed so the check keeps them out of the others.
func DefaultLists() []List {
	return []List{
		{
			Name: "keyword.control.powerquery",
			Literals: []string{
				"each",
				"else",
				"error",
				"if",
				"in",
				"let",
				"otherwise",
				"then",
				"try",
			},
		},
		{
			Name: "keyword.constant.language.powerquery",
			Literals: []string{
				"false",
				"true",
			},
		},
		{
			Name: "keyword.operator.powerquery",
			Literals: []string{
				"and",
				"as",
				"is",
				"not",
				"or",
			},
		},
		{
			Name: "keyword.other.powerquery",
			Literals: []string{
				"meta",
				"section",
				"shared",
				"type",
			},
		},
		{
			Name: "keyword.other.hash.powerquery",
			Literals: []string{
				"binary",
				"date",
				"datetime",
				"datetimezone",
				"duration",
				"infinity",
				"nan",
				"sections",
				"table",
				"time",
			},
			CheckOnly: true,
		},
	}
}
