package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/settings"
)

// JSONWriter outputs the full report as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *inspect.Report) error {
	return writeJSON(w, report)
}

func (j *JSONWriter) WriteSet(w io.Writer, set settings.Set) error {
	return writeJSON(w, set.Map())
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
