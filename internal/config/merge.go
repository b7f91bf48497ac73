package config

import "strings"

// Merge applies layers over base in order; later layers win field by field.
// Mapping and keyword tables replace earlier ones wholesale.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Input = resolveTrimmed(out.Input, layer.Input)
		out.Format = resolveTrimmed(out.Format, layer.Format)
		out.Color = resolveTrimmed(out.Color, layer.Color)
		out.Verify = resolve(out.Verify, layer.Verify)
		out.Summary = resolve(out.Summary, layer.Summary)
		if layer.Mapping != nil {
			out.Mapping = cloneMapping(*layer.Mapping)
		}
		if layer.Keywords != nil {
			out.Keywords = cloneKeywordLists(*layer.Keywords)
		}
	}
	return out
}

func resolve[T any](def T, v *T) T {
	if v == nil {
		return def
	}
	return *v
}

func resolveTrimmed(def string, v *string) string {
	return strings.TrimSpace(resolve(def, v))
}

func cloneMapping(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneKeywordLists(in []KeywordList) []KeywordList {
	out := make([]KeywordList, len(in))
	for i, l := range in {
		out[i] = KeywordList{Name: l.Name, Literals: cloneStrings(l.Literals), CheckOnly: l.CheckOnly}
	}
	return out
}
