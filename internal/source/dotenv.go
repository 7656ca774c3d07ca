package source

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// parseDotenv reads KEY=value lines. Blank lines and #-comments are
// skipped, a leading "export " is tolerated, and single or double quotes
// around the value are stripped. A key that appears twice fails with
// DuplicateKeyError instead of picking a winner.
func parseDotenv(path string, data []byte) (map[string]string, error) {
	pairs := make(map[string]string)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("parsing %s: line %d: missing '='", path, lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("parsing %s: line %d: empty key", path, lineNo)
		}
		if _, seen := pairs[key]; seen {
			return nil, fmt.Errorf("parsing %s: %w", path, &DuplicateKeyError{Key: key, Line: lineNo})
		}
		pairs[key] = unquote(strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return pairs, nil
}

// unquote strips one matching pair of surrounding quotes, if present.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
