package output

import (
	"fmt"
	"io"
	"os"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/settings"
)

// Writer writes a diff report in a specific format.
type Writer interface {
	Write(w io.Writer, report *inspect.Report) error
	WriteSet(w io.Writer, set settings.Set) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *inspect.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	w, closeFn, err := destination(outPath)
	if err != nil {
		return err
	}
	defer closeFn()
	return writer.Write(w, report)
}

// WriteSet writes a resolved set to the specified output (file path or stdout).
func WriteSet(set settings.Set, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	w, closeFn, err := destination(outPath)
	if err != nil {
		return err
	}
	defer closeFn()
	return writer.WriteSet(w, set)
}

func destination(outPath string) (io.Writer, func(), error) {
	if outPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
