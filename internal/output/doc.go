// Package output formats diff reports and resolved sets for display or
// machine consumption.
//
// Three formats are supported:
//   - text     — human-readable terminal output (default); unified mode
//     renders patch-style -/+ lines
//   - json     — full structured JSON
//   - markdown — table output suitable for PR comments
//
// Use [GetWriter] to obtain a [Writer] for a format string, then call
// [Writer.Write] with an [io.Writer] and a [*inspect.Report].
// [WriteReport] and [WriteSet] are convenience helpers that handle
// destination selection.
package output
