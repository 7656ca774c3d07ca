package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/settings"
)

// TextWriter outputs human-readable terminal text.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *inspect.Report) error {
	if report.Mode == inspect.ModeUnified {
		return t.writeUnified(w, report)
	}
	return t.writeDefault(w, report)
}

// writeUnified renders patch-style output: a removal/addition line pair
// per changed key, removal only for keys missing from b, addition only
// for keys missing from a.
func (t *TextWriter) writeUnified(w io.Writer, report *inspect.Report) error {
	fmt.Fprintf(w, "--- %s\n", report.LocatorA)
	fmt.Fprintf(w, "+++ %s\n", report.LocatorB)
	for _, e := range report.Entries {
		if e.PresentA {
			fmt.Fprintf(w, "- %s = %s\n", e.Key, FormatValue(e.A))
		}
		if e.PresentB {
			fmt.Fprintf(w, "+ %s = %s\n", e.Key, FormatValue(e.B))
		}
	}
	return nil
}

// writeDefault renders every key in the union. Changed keys get a "~"
// marker with both values, one-sided keys get "-"/"+", unchanged keys are
// listed unmarked rather than dropped.
func (t *TextWriter) writeDefault(w io.Writer, report *inspect.Report) error {
	fmt.Fprintf(w, "Comparing %s with %s\n", report.LocatorA, report.LocatorB)
	fmt.Fprintf(w, "Keys: %d total, %d changed\n\n", report.Summary.Total, report.Summary.Changed)

	for _, e := range report.Entries {
		switch {
		case !e.Changed:
			fmt.Fprintf(w, "  %s = %s\n", e.Key, FormatValue(e.A))
		case e.PresentA && e.PresentB:
			fmt.Fprintf(w, "~ %s = %s -> %s\n", e.Key, FormatValue(e.A), FormatValue(e.B))
		case e.PresentA:
			fmt.Fprintf(w, "- %s = %s\n", e.Key, FormatValue(e.A))
		default:
			fmt.Fprintf(w, "+ %s = %s\n", e.Key, FormatValue(e.B))
		}
	}

	if report.Summary.Changed == 0 {
		fmt.Fprintln(w, "\nNo differences found.")
	}
	return nil
}

func (t *TextWriter) WriteSet(w io.Writer, set settings.Set) error {
	for _, key := range set.Keys() {
		value, _ := set.Get(key)
		fmt.Fprintf(w, "%s = %s\n", key, FormatValue(value))
	}
	return nil
}

// FormatValue renders a settings value for text output. Strings are
// quoted so an empty string and a missing value read differently; lists
// render as bracketed comma-joined elements.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", value)
	case []string:
		return "[" + strings.Join(value, ", ") + "]"
	default:
		return fmt.Sprintf("%v", value)
	}
}
