package settings

import "sort"

// Set is an immutable mapping of configuration keys to values. The zero
// value is an empty set. Values are strings unless a coercion hint turned
// them into bool, int, float64 or []string during resolution.
//
// A Set is never mutated after construction; every derivation copies.
// Concurrent readers need no synchronization.
type Set struct {
	values map[string]any
}

// NewSet builds a Set from a map, copying it so later mutation of the
// argument cannot leak in.
func NewSet(values map[string]any) Set {
	return Set{values: copyValues(values)}
}

// Get returns the value for key and whether the key is present.
func (s Set) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns all keys in ascending lexical order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (s Set) Len() int {
	return len(s.values)
}

// Map returns a copy of the underlying mapping. Mutating the returned map
// does not affect the Set.
func (s Set) Map() map[string]any {
	return copyValues(s.values)
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
