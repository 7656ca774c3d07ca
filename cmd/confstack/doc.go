// Confstack resolves layered application settings and diffs resolved sets.
//
// It overlays override sources (dotenv, JSON, YAML, TOML files, the
// process environment, or an env-var indirection) onto built-in defaults,
// coerces string overrides into typed values via declared hints, and
// compares two resolved sets with deterministic exit codes.
//
// Usage:
//
//	confstack show prod.env                     # print the resolved set
//	confstack show env:APP_SETTINGS             # locator read from $APP_SETTINGS
//	confstack diff staging.env prod.env         # annotated comparison
//	confstack diff --mode unified a.env b.env   # patch-style -/+ lines
//	confstack diff --overlay common.env a.env b.env
//	confstack keys                              # built-in baseline
package main
