package config

import (
	"fmt"
	"strings"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// SplitList turns comma-separated values into a flat, trimmed slice.
func SplitList(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		if part := strings.TrimSpace(piece); part != "" {
			out = append(out, part)
		}
	}
	return out
}
