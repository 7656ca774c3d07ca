package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/settings"
)

func TestTextWriter_UnifiedSingleChange(t *testing.T) {
	entries := []inspect.Entry{
		{Key: "SECURE_HSTS", A: false, B: true, PresentA: true, PresentB: true, Changed: true},
	}
	report := inspect.BuildReport("a.env", "b.env", inspect.ModeUnified, entries)

	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "--- a.env") || !strings.Contains(out, "+++ b.env") {
		t.Errorf("unified output missing headers:\n%s", out)
	}
	if !strings.Contains(out, "- SECURE_HSTS = false") {
		t.Errorf("unified output missing removal line:\n%s", out)
	}
	if !strings.Contains(out, "+ SECURE_HSTS = true") {
		t.Errorf("unified output missing addition line:\n%s", out)
	}
}

func TestTextWriter_UnifiedOneSidedKeys(t *testing.T) {
	entries := []inspect.Entry{
		{Key: "ONLY_A", A: "x", PresentA: true, Changed: true},
		{Key: "ONLY_B", B: "y", PresentB: true, Changed: true},
	}
	report := inspect.BuildReport("a.env", "b.env", inspect.ModeUnified, entries)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `- ONLY_A = "x"`) {
		t.Errorf("missing removal for ONLY_A:\n%s", out)
	}
	if strings.Contains(out, "+ ONLY_A") {
		t.Errorf("ONLY_A should have no addition line:\n%s", out)
	}
	if !strings.Contains(out, `+ ONLY_B = "y"`) {
		t.Errorf("missing addition for ONLY_B:\n%s", out)
	}
}

func TestTextWriter_DefaultModeAnnotates(t *testing.T) {
	entries := []inspect.Entry{
		{Key: "DEBUG", A: false, B: true, PresentA: true, PresentB: true, Changed: true},
		{Key: "TIME_ZONE", A: "UTC", B: "UTC", PresentA: true, PresentB: true, Changed: false},
	}
	report := inspect.BuildReport("a.env", "b.env", inspect.ModeDefault, entries)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "~ DEBUG = false -> true") {
		t.Errorf("changed key not marked:\n%s", out)
	}
	if !strings.Contains(out, `  TIME_ZONE = "UTC"`) {
		t.Errorf("unchanged key should be listed, not dropped:\n%s", out)
	}
	if !strings.Contains(out, "2 total, 1 changed") {
		t.Errorf("summary line missing:\n%s", out)
	}
}

func TestTextWriter_DefaultModeNoDifferences(t *testing.T) {
	entries := []inspect.Entry{
		{Key: "DEBUG", A: false, B: false, PresentA: true, PresentB: true, Changed: false},
	}
	report := inspect.BuildReport("a.env", "a.env", inspect.ModeDefault, entries)

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "No differences found.") {
		t.Errorf("output should say no differences found:\n%s", buf.String())
	}
}

func TestTextWriter_WriteSet(t *testing.T) {
	set := settings.NewSet(map[string]any{
		"DEBUG":         false,
		"ALLOWED_HOSTS": []string{"a.example", "b.example"},
		"TIME_ZONE":     "UTC",
	})

	var buf bytes.Buffer
	if err := (&TextWriter{}).WriteSet(&buf, set); err != nil {
		t.Fatalf("WriteSet error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"ALLOWED_HOSTS = [a.example, b.example]",
		"DEBUG = false",
		`TIME_ZONE = "UTC"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("WriteSet = %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"bool", true, "true"},
		{"int", 587, "587"},
		{"float", 0.5, "0.5"},
		{"string quoted", "UTC", `"UTC"`},
		{"empty string", "", `""`},
		{"list", []string{"a", "b"}, "[a, b]"},
		{"empty list", []string{}, "[]"},
		{"nil", nil, "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
