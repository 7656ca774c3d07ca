package output

import (
	"fmt"
	"io"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/settings"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *inspect.Report) error {
	fmt.Fprintf(w, "## Settings Diff\n\n")
	fmt.Fprintf(w, "`%s` vs `%s` (%s mode)\n\n", report.LocatorA, report.LocatorB, report.Mode)

	if len(report.Entries) == 0 {
		fmt.Fprintln(w, "No differences found. :white_check_mark:")
		return nil
	}

	fmt.Fprintf(w, "| Key | A | B | Changed |\n")
	fmt.Fprintf(w, "|-----|---|---|--------|\n")
	for _, e := range report.Entries {
		fmt.Fprintf(w, "| `%s` | %s | %s | %s |\n",
			e.Key, mdValue(e.A, e.PresentA), mdValue(e.B, e.PresentB), mdChanged(e.Changed))
	}
	fmt.Fprintf(w, "\n%d keys, %d changed\n", report.Summary.Total, report.Summary.Changed)
	return nil
}

func (m *MarkdownWriter) WriteSet(w io.Writer, set settings.Set) error {
	fmt.Fprintf(w, "| Key | Value |\n")
	fmt.Fprintf(w, "|-----|-------|\n")
	for _, key := range set.Keys() {
		value, _ := set.Get(key)
		fmt.Fprintf(w, "| `%s` | %s |\n", key, mdValue(value, true))
	}
	return nil
}

func mdValue(v any, present bool) string {
	if !present {
		return "—"
	}
	return fmt.Sprintf("`%s`", FormatValue(v))
}

func mdChanged(changed bool) string {
	if changed {
		return "yes"
	}
	return ""
}
