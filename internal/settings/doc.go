// Package settings assembles immutable, layered configuration sets.
//
// A [Set] is built once by overlaying override sources onto a baseline and
// is read-only afterwards, which makes it safe to share across goroutines
// without locking. Layering is explicit function composition rather than
// ambient global state:
//
//	set, err := settings.Resolve(settings.Defaults(), "common.env", hints)
//	if err == nil {
//		set, err = settings.Resolve(set, "env:APP_SETTINGS", hints)
//	}
//
// Later layers win on key collision; keys absent from a layer keep the
// value below. Raw override values are strings; keys declared in [Hints]
// are coerced to a typed value, and a coercion failure aborts the whole
// resolution rather than defaulting silently.
//
// Boolean coercion is deliberately strict: only "true", "yes", "on" and
// "1" (case-insensitive) are truthy. Any other string, including non-empty
// garbage, is false. Relying on generic truthiness here is the classic way
// to ship DEBUG=true to production, so the whitelist is part of the
// contract.
package settings
