package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitDifferences  = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "confstack",
	Short: "Layered settings resolution and diffing",
	Long:  "Confstack resolves layered configuration from defaults, files and the environment, and diffs two resolved settings sets.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print confstack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "confstack version %s\n", version)
	},
}
