package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDelimiter splits raw list values when no other delimiter is
// configured.
const DefaultDelimiter = ","

// truthy is the full whitelist of truthy boolean tokens, compared
// case-insensitively. Everything else is false.
var truthy = map[string]struct{}{
	"true": {},
	"yes":  {},
	"on":   {},
	"1":    {},
}

// CoercionError reports a raw value that cannot be converted to its
// declared type. Resolution fails rather than keeping a partial result.
type CoercionError struct {
	Key  string
	Raw  string
	Type Type
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %s value %q to %s", e.Key, e.Raw, e.Type)
}

// CoerceBool converts a raw string to a boolean. Only whitelist tokens are
// truthy; "banana" is false, not an error. Intentional and documented:
// see the package comment.
func CoerceBool(raw string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// CoerceList splits a raw string on delimiter, trimming whitespace around
// each element. An empty raw value yields an empty list.
func CoerceList(raw, delimiter string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Coerce converts a raw string to the declared type. Bool and list
// coercion cannot fail; int and float return *CoercionError on
// unparseable input.
func Coerce(key, raw string, t Type, delimiter string) (any, error) {
	switch t {
	case TypeString:
		return raw, nil
	case TypeBool:
		return CoerceBool(raw), nil
	case TypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &CoercionError{Key: key, Raw: raw, Type: t}
		}
		return n, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &CoercionError{Key: key, Raw: raw, Type: t}
		}
		return f, nil
	case TypeList:
		if delimiter == "" {
			delimiter = DefaultDelimiter
		}
		return CoerceList(raw, delimiter), nil
	default:
		return nil, &CoercionError{Key: key, Raw: raw, Type: t}
	}
}
