package config

import (
	"github.com/phyten/grammargen/internal/hashshared"
	"github.com/phyten/grammargen/internal/keywords"
)

// KeywordList is the file form of one keyword category.
type KeywordList struct {
	Name      string   `yaml:"name" toml:"name" json:"name"`
	Literals  []string `yaml:"literals" toml:"literals" json:"literals"`
	CheckOnly bool     `yaml:"check_only" toml:"check_only" json:"check_only"`
}

// Config is one layer (file or environment). Nil fields are unset.
type Config struct {
	Input    *string            `yaml:"input" toml:"input" json:"input"`
	Format   *string            `yaml:"format" toml:"format" json:"format"`
	Color    *string            `yaml:"color" toml:"color" json:"color"`
	Verify   *bool              `yaml:"verify" toml:"verify" json:"verify"`
	Summary  *bool              `yaml:"summary" toml:"summary" json:"summary"`
	Mapping  *map[string]string `yaml:"mapping" toml:"mapping" json:"mapping"`
	Keywords *[]KeywordList     `yaml:"keywords" toml:"keywords" json:"keywords"`
}

// Settings is the merged, effective configuration. A nil Mapping or
// Keywords selects the built-in tables.
type Settings struct {
	Input    string
	Format   string
	Color    string
	Verify   bool
	Summary  bool
	Mapping  map[string]string
	Keywords []KeywordList
}

func DefaultSettings() Settings {
	return Settings{
		Input:  "hashShared.csv",
		Format: "text",
		Color:  "auto",
	}
}

// ValueMapping returns the configured value mapping, or the built-in one.
func (s Settings) ValueMapping() hashshared.Mapping {
	if s.Mapping == nil {
		return hashshared.DefaultMapping()
	}
	return hashshared.MappingFromStrings(s.Mapping)
}

// KeywordLists returns the configured keyword lists, or the built-in ones.
func (s Settings) KeywordLists() []keywords.List {
	if s.Keywords == nil {
		return keywords.DefaultLists()
	}
	out := make([]keywords.List, len(s.Keywords))
	for i, l := range s.Keywords {
		out[i] = keywords.List{Name: l.Name, Literals: cloneStrings(l.Literals), CheckOnly: l.CheckOnly}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
