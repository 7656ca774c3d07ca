package inspect

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/confstack/confstack/internal/settings"
)

// Mode selects how much of the comparison is reported.
type Mode string

const (
	// ModeDefault reports every key in the union of both sets, with
	// unchanged keys annotated.
	ModeDefault Mode = "default"
	// ModeUnified reports only keys whose value or presence differs.
	ModeUnified Mode = "unified"
)

// ParseMode validates a mode string from a flag.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDefault, ModeUnified:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unsupported diff mode: %s", s)
	}
}

// Entry records the comparison result for one key.
type Entry struct {
	Key      string `json:"key"`
	A        any    `json:"a"`
	B        any    `json:"b"`
	PresentA bool   `json:"presentA"`
	PresentB bool   `json:"presentB"`
	Changed  bool   `json:"changed"`
}

// Diff compares two sets. Ordering is stable: ascending lexical key order.
// Neither set is modified.
func Diff(a, b settings.Set, mode Mode) ([]Entry, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	keys := unionKeys(a, b)
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		valueA, okA := a.Get(key)
		valueB, okB := b.Get(key)

		entry := Entry{
			Key:      key,
			A:        valueA,
			B:        valueB,
			PresentA: okA,
			PresentB: okB,
			Changed:  okA != okB || !reflect.DeepEqual(valueA, valueB),
		}
		if mode == ModeUnified && !entry.Changed {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func unionKeys(a, b settings.Set) []string {
	seen := make(map[string]struct{}, a.Len()+b.Len())
	for _, k := range a.Keys() {
		seen[k] = struct{}{}
	}
	for _, k := range b.Keys() {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
