package source

import (
	"errors"
	"fmt"
)

// ErrSourceNotFound indicates that a locator could not be resolved to any
// readable override data: the file does not exist, the indirection variable
// is unset, or the locator scheme is unknown. Callers match it with
// errors.Is.
var ErrSourceNotFound = errors.New("source not found")

// DuplicateKeyError reports a key defined twice in the same dotenv source.
// A repeated key is ambiguous rather than a silent last-one-wins, so the
// whole load fails. Callers match it with errors.As.
type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q (line %d)", e.Key, e.Line)
}
