package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/settings"
)

func TestJSONWriter_RoundTrip(t *testing.T) {
	entries := []inspect.Entry{
		{Key: "DEBUG", A: false, B: true, PresentA: true, PresentB: true, Changed: true},
	}
	report := inspect.BuildReport("a.env", "b.env", inspect.ModeUnified, entries)

	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded inspect.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Tool != "confstack" {
		t.Errorf("tool = %q, want confstack", decoded.Tool)
	}
	if decoded.LocatorA != "a.env" || decoded.LocatorB != "b.env" {
		t.Errorf("locators = %q, %q", decoded.LocatorA, decoded.LocatorB)
	}
	if len(decoded.Entries) != 1 || decoded.Entries[0].Key != "DEBUG" {
		t.Errorf("entries = %+v", decoded.Entries)
	}
	if decoded.Summary.Changed != 1 {
		t.Errorf("summary changed = %d, want 1", decoded.Summary.Changed)
	}
}

func TestJSONWriter_WriteSet(t *testing.T) {
	set := settings.NewSet(map[string]any{"DEBUG": false, "EMAIL_PORT": 25})

	var buf bytes.Buffer
	if err := (&JSONWriter{}).WriteSet(&buf, set); err != nil {
		t.Fatalf("WriteSet error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["DEBUG"] != false {
		t.Errorf("DEBUG = %v, want false", decoded["DEBUG"])
	}
	if decoded["EMAIL_PORT"] != float64(25) {
		t.Errorf("EMAIL_PORT = %v, want 25", decoded["EMAIL_PORT"])
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("xml"); err == nil {
		t.Error("GetWriter(xml) should error")
	}
}
