package source

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func parseJSON(path string, data []byte) (map[string]string, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return flatten(doc), nil
}

func parseYAML(path string, data []byte) (map[string]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return flatten(doc), nil
}

func parseTOML(path string, data []byte) (map[string]string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return flatten(doc), nil
}

// flatten converts a decoded document into flat raw pairs. Nested maps
// join their keys with underscores, sequences become comma-joined strings,
// and every key is normalized to the uppercase token convention.
func flatten(doc map[string]any) map[string]string {
	pairs := make(map[string]string)
	flattenInto(pairs, "", doc)
	return pairs
}

func flattenInto(pairs map[string]string, prefix string, doc map[string]any) {
	for key, value := range doc {
		full := normalizeKey(key)
		if prefix != "" {
			full = prefix + "_" + full
		}
		switch v := value.(type) {
		case map[string]any:
			flattenInto(pairs, full, v)
		case map[any]any:
			flattenInto(pairs, full, stringKeyed(v))
		case []any:
			items := make([]string, len(v))
			for i, item := range v {
				items[i] = scalarString(item)
			}
			pairs[full] = strings.Join(items, ",")
		default:
			pairs[full] = scalarString(value)
		}
	}
}

// stringKeyed converts the map form older YAML decoders produce for nested
// mappings.
func stringKeyed(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprintf("%v", k)] = v
	}
	return out
}

func normalizeKey(key string) string {
	key = strings.ToUpper(key)
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, ".", "_")
	return key
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
