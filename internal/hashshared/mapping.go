package hashshared

import "sort"

// NumberKey is the synthetic raw value every numeric literal classifies as.
const NumberKey = "[Number]"

// Category labels used by the built-in mapping.
const (
	CategoryConstant = "entity.constant.other.powerquery"
	CategoryFunction = "entity.name.function.powerquery"
	CategoryNumeric  = "constant.numeric.powerquery"
	CategoryType     = "entity.support.type.powerquery"
)

// Target is the category a raw value maps to. The zero Target is absent:
// names mapped to it are classified but never emitted.
type Target struct {
	category string
}

// To returns the Target for category. An empty category is absent.
func To(category string) Target { return Target{category: category} }

// Absent returns the filtering Target.
func Absent() Target { return Target{} }

// Category returns the label and whether the target is emitted at all.
func (t Target) Category() (string, bool) {
	return t.category, t.category != ""
}

func (t Target) String() string {
	if t.category == "" {
		return "<absent>"
	}
	return t.category
}

// Mapping associates raw values with their Target. Treat as read-only.
type Mapping map[string]Target

// DefaultMapping returns the table for the standard library's shared
// names.
func DefaultMapping() Mapping {
	return Mapping{
		"DELETE":     To(CategoryConstant),
		"GET":        To(CategoryConstant),
		"HEAD":       To(CategoryConstant),
		"PATCH":      To(CategoryConstant),
		"POST":       To(CategoryConstant),
		"PUT":        To(CategoryConstant),
		"[Function]": To(CategoryFunction),
		"[Record]":   Absent(),
		"[Table]":    Absent(),
		NumberKey:    To(CategoryNumeric),
		"[Type]":     To(CategoryType),
		"en-US":      To(CategoryType),
	}
}

// MappingFromStrings builds a Mapping from value → category pairs; empty
// categories are absent. The numeric key is added as CategoryNumeric unless
// present.
func MappingFromStrings(raw map[string]string) Mapping {
	m := make(Mapping, len(raw)+1)
	for value, category := range raw {
		m[value] = To(category)
	}
	if _, ok := m[NumberKey]; !ok {
		m[NumberKey] = To(CategoryNumeric)
	}
	return m
}

// Values returns the mapped raw values in sorted order.
func (m Mapping) Values() []string {
	out := make([]string, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
