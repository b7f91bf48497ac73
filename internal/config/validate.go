package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phyten/grammargen/internal/output"
	"github.com/phyten/grammargen/internal/termcolor"
)

// Normalize canonicalises format and color and checks the tables. All
// problems are reported together.
func Normalize(s Settings) (Settings, error) {
	var errs []error

	format, err := output.CanonicalFormat(s.Format)
	if err != nil {
		errs = append(errs, err)
	}
	s.Format = format

	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		errs = append(errs, err)
	}
	s.Color = mode.String()

	if strings.TrimSpace(s.Input) == "" {
		s.Input = DefaultSettings().Input
	}

	for value, category := range s.Mapping {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("mapping: empty value key"))
		}
		if category != strings.TrimSpace(category) {
			errs = append(errs, fmt.Errorf("mapping: category for %q has surrounding whitespace", value))
		}
	}

	seen := make(map[string]struct{}, len(s.Keywords))
	for i, l := range s.Keywords {
		if l.Name == "" {
			errs = append(errs, fmt.Errorf("keywords[%d]: name is required", i))
			continue
		}
		if _, dup := seen[l.Name]; dup {
			errs = append(errs, fmt.Errorf("keywords[%d]: duplicate category %s", i, l.Name))
		}
		seen[l.Name] = struct{}{}
		if len(l.Literals) == 0 {
			errs = append(errs, fmt.Errorf("keywords[%d]: %s has no literals", i, l.Name))
		}
	}

	if len(errs) > 0 {
		return s, errors.Join(errs...)
	}
	return s, nil
}
