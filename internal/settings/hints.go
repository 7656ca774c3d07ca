package settings

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Type names a coercion target for a hinted key.
type Type int

const (
	TypeString Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeList
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeList:
		return "list"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a type name from a hints file to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str":
		return TypeString, nil
	case "bool", "boolean":
		return TypeBool, nil
	case "int", "integer":
		return TypeInt, nil
	case "float":
		return TypeFloat, nil
	case "list":
		return TypeList, nil
	default:
		return TypeString, fmt.Errorf("unknown type %q", s)
	}
}

// Hint declares the target type for a key and the value to use when the
// key is absent from every layer.
type Hint struct {
	Type    Type
	Default any
}

// Hints maps keys to their declared coercion hints.
type Hints map[string]Hint

// Merge returns a new Hints with entries from other overriding entries of
// the receiver on key collision. Neither argument is mutated.
func (h Hints) Merge(other Hints) Hints {
	merged := make(Hints, len(h)+len(other))
	for k, v := range h {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// ParseHints reads hint declarations, one per line:
//
//	KEY=type
//	KEY=type:default
//
// Blank lines and #-comments are skipped. The default, when given, is
// coerced with the declared type, so a bad default fails the same way a
// bad override would.
func ParseHints(r io.Reader) (Hints, error) {
	hints := make(Hints)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, decl, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("hints line %d: missing '='", lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("hints line %d: empty key", lineNo)
		}

		typeName, rawDefault, hasDefault := strings.Cut(decl, ":")
		typ, err := ParseType(typeName)
		if err != nil {
			return nil, fmt.Errorf("hints line %d: %w", lineNo, err)
		}

		hint := Hint{Type: typ}
		if hasDefault {
			value, err := Coerce(key, strings.TrimSpace(rawDefault), typ, DefaultDelimiter)
			if err != nil {
				return nil, fmt.Errorf("hints line %d: %w", lineNo, err)
			}
			hint.Default = value
		} else {
			hint.Default = zeroValue(typ)
		}
		hints[key] = hint
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hints: %w", err)
	}

	return hints, nil
}

// LoadHints reads hint declarations from a file.
func LoadHints(path string) (Hints, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hints file: %w", err)
	}
	defer f.Close()
	return ParseHints(f)
}

func zeroValue(t Type) any {
	switch t {
	case TypeBool:
		return false
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeList:
		return []string{}
	default:
		return ""
	}
}
