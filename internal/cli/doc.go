// Package cli wires together the Cobra command tree for the confstack
// binary.
//
// It defines the root command and all subcommands (diff, show, keys,
// version), binds flags, reads the tool's own options from the process
// environment, invokes the resolver and inspector, and returns
// deterministic exit codes for CI gating.
package cli
