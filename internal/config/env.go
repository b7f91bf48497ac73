package config

import (
	"errors"
	"strings"
)

// Environment variable names.
const (
	EnvConfig  = "GRAMMARGEN_CONFIG"
	EnvInput   = "GRAMMARGEN_INPUT"
	EnvFormat  = "GRAMMARGEN_FORMAT"
	EnvColor   = "GRAMMARGEN_COLOR"
	EnvVerify  = "GRAMMARGEN_VERIFY"
	EnvSummary = "GRAMMARGEN_SUMMARY"
)

// FromEnv builds a layer from GRAMMARGEN_* variables. Every malformed value
// is reported.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setString(&cfg.Input, EnvInput)
	setString(&cfg.Format, EnvFormat)
	setString(&cfg.Color, EnvColor)
	setBool(&cfg.Verify, EnvVerify)
	setBool(&cfg.Summary, EnvSummary)

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
