package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	envScheme     = "env:"
	environScheme = "environ"
)

// Load reads raw key/value pairs from the source named by locator.
// See the package documentation for the locator grammar.
func Load(locator string) (map[string]string, error) {
	switch {
	case locator == "":
		return nil, fmt.Errorf("%w: empty locator", ErrSourceNotFound)
	case strings.HasPrefix(locator, envScheme):
		return loadIndirect(strings.TrimPrefix(locator, envScheme))
	case locator == environScheme:
		return fromEnviron(""), nil
	case strings.HasPrefix(locator, environScheme+":"):
		return fromEnviron(strings.TrimPrefix(locator, environScheme+":")), nil
	default:
		return loadFile(locator)
	}
}

// loadIndirect follows one level of indirection: the environment variable
// name holds the real locator. An unset or empty variable is a missing
// source, matching the failure mode of launching without the variable
// exported.
func loadIndirect(name string) (map[string]string, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: env: locator with no variable name", ErrSourceNotFound)
	}
	target := os.Getenv(name)
	if target == "" {
		return nil, fmt.Errorf("%w: environment variable %s is unset or empty", ErrSourceNotFound, name)
	}
	if strings.HasPrefix(target, envScheme) {
		return nil, fmt.Errorf("%w: %s points to another env: locator", ErrSourceNotFound, name)
	}
	return Load(target)
}

// fromEnviron snapshots the process environment. With a non-empty prefix,
// only matching variables are kept and the prefix is stripped from the key.
func fromEnviron(prefix string) map[string]string {
	pairs := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		if prefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
			if key == "" {
				continue
			}
		}
		pairs[key] = value
	}
	return pairs
}

func loadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return parseJSON(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	case ".toml":
		return parseTOML(path, data)
	default:
		return parseDotenv(path, data)
	}
}
