// Package source loads raw key/value override data from a locator string.
//
// Three locator schemes are supported:
//
//	env:NAME        indirection: the environment variable NAME holds the
//	                real locator (typically a file path)
//	environ         the process environment itself
//	environ:PREFIX_ only environment variables starting with PREFIX_,
//	                with the prefix stripped
//	<path>          a file, parsed by extension: .json, .yaml/.yml, .toml,
//	                or dotenv KEY=value lines for .env and everything else
//
// Every loader returns a flat map of raw string values. Structured formats
// are flattened: nested keys join with underscores and are upper-cased, so
// a YAML `email: {host: smtp.local}` becomes EMAIL_HOST. Sources are read
// exactly once per call; nothing is watched or written back.
package source
