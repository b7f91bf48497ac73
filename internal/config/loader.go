package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var keyMap = map[string]string{
	"input":    "input",
	"table":    "input",
	"format":   "format",
	"output":   "format",
	"color":    "color",
	"verify":   "verify",
	"summary":  "summary",
	"mapping":  "mapping",
	"values":   "mapping",
	"keywords": "keywords",
}

var keywordKeyMap = map[string]string{
	"name":       "name",
	"category":   "name",
	"literals":   "literals",
	"words":      "literals",
	"check_only": "check_only",
}

// Load reads a YAML, TOML or JSON config file, chosen by extension. An empty
// path yields an empty layer.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}
	cfg, err = decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		canonical, ok := keyMap[normalizeKey(key)]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		switch canonical {
		case "input":
			str, err := expectString(value, canonical)
			if err != nil {
				return cfg, err
			}
			trimmed := strings.TrimSpace(str)
			cfg.Input = &trimmed
		case "format":
			str, err := expectString(value, canonical)
			if err != nil {
				return cfg, err
			}
			trimmed := strings.TrimSpace(str)
			cfg.Format = &trimmed
		case "color":
			str, err := expectString(value, canonical)
			if err != nil {
				return cfg, err
			}
			trimmed := strings.TrimSpace(str)
			cfg.Color = &trimmed
		case "verify":
			b, err := expectBool(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.Verify = &b
		case "summary":
			b, err := expectBool(value, canonical)
			if err != nil {
				return cfg, err
			}
			cfg.Summary = &b
		case "mapping":
			m, err := expectMapping(value)
			if err != nil {
				return cfg, err
			}
			cfg.Mapping = &m
		case "keywords":
			lists, err := expectKeywordLists(value)
			if err != nil {
				return cfg, err
			}
			cfg.Keywords = &lists
		}
	}
	return cfg, nil
}

// expectMapping keeps raw values verbatim (they are case sensitive); a null
// or empty category marks the value as filtered.
func expectMapping(value any) (map[string]string, error) {
	section, err := toStringKeyMap(value)
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	out := make(map[string]string, len(section))
	for rawValue, target := range section {
		if rawValue == "" {
			return nil, fmt.Errorf("mapping: empty value key")
		}
		if target == nil {
			out[rawValue] = ""
			continue
		}
		category, err := expectString(target, "mapping."+rawValue)
		if err != nil {
			return nil, err
		}
		out[rawValue] = strings.TrimSpace(category)
	}
	return out, nil
}

func expectKeywordLists(value any) ([]KeywordList, error) {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []map[string]any:
		for _, m := range v {
			items = append(items, m)
		}
	default:
		return nil, fmt.Errorf("expected list for keywords, got %T", value)
	}
	out := make([]KeywordList, 0, len(items))
	for i, item := range items {
		section, err := toStringKeyMap(item)
		if err != nil {
			return nil, fmt.Errorf("keywords[%d]: %w", i, err)
		}
		var list KeywordList
		for key, v := range section {
			canonical, ok := keywordKeyMap[normalizeKey(key)]
			if !ok {
				return nil, fmt.Errorf("keywords[%d]: unknown key: %s", i, key)
			}
			switch canonical {
			case "name":
				str, err := expectString(v, "name")
				if err != nil {
					return nil, fmt.Errorf("keywords[%d]: %w", i, err)
				}
				list.Name = strings.TrimSpace(str)
			case "literals":
				lits, err := expectStringList(v, "literals")
				if err != nil {
					return nil, fmt.Errorf("keywords[%d]: %w", i, err)
				}
				list.Literals = lits
			case "check_only":
				b, err := expectBool(v, "check_only")
				if err != nil {
					return nil, fmt.Errorf("keywords[%d]: %w", i, err)
				}
				list.CheckOnly = b
			}
		}
		out = append(out, list)
	}
	return out, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return SplitList(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
