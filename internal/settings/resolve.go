package settings

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/confstack/confstack/internal/source"
)

// Option adjusts resolution behavior.
type Option func(*resolveOptions)

type resolveOptions struct {
	delimiter string
}

// WithDelimiter sets the delimiter used for list coercion. Default ",".
func WithDelimiter(d string) Option {
	return func(o *resolveOptions) {
		if d != "" {
			o.delimiter = d
		}
	}
}

// Resolve overlays the source named by locator onto base and returns a new
// Set. base is never mutated and no partial Set is returned on error.
//
// Raw pairs from the source overwrite base values of the same key; keys
// absent from the source keep their base value. Keys declared in hints are
// coerced to the hinted type; a hinted key missing from both source and
// base gets the hint's default. Source-only keys without a hint pass
// through as raw strings.
//
// Errors: source.ErrSourceNotFound (via errors.Is) when the locator does
// not resolve, *source.DuplicateKeyError and *CoercionError (via
// errors.As) for malformed data.
func Resolve(base Set, locator string, hints Hints, opts ...Option) (Set, error) {
	o := resolveOptions{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := source.Load(locator)
	if err != nil {
		return Set{}, fmt.Errorf("resolving %s: %w", locator, err)
	}

	merged := base.Map()
	overlay := make(map[string]any, len(raw))
	for k, v := range raw {
		overlay[k] = v
	}
	if err := mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
		return Set{}, fmt.Errorf("merging %s: %w", locator, err)
	}

	for key, hint := range hints {
		rawValue, inSource := raw[key]
		if !inSource {
			if _, inBase := base.Get(key); inBase {
				continue
			}
			merged[key] = hint.Default
			continue
		}
		value, err := Coerce(key, rawValue, hint.Type, o.delimiter)
		if err != nil {
			return Set{}, fmt.Errorf("resolving %s: %w", locator, err)
		}
		merged[key] = value
	}

	return Set{values: merged}, nil
}

// ResolveAll applies locators left to right, each layer overlaying the
// previous result. Equivalent to nesting Resolve calls by hand.
func ResolveAll(base Set, locators []string, hints Hints, opts ...Option) (Set, error) {
	set := base
	for _, locator := range locators {
		next, err := Resolve(set, locator, hints, opts...)
		if err != nil {
			return Set{}, err
		}
		set = next
	}
	return set, nil
}
