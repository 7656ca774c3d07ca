package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confstack/confstack/internal/logging"
	"github.com/confstack/confstack/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <locator>",
	Short: "Resolve a source locator and print the effective settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		log := logging.New(flagVerbose || opts.Verbose)

		hints, err := buildHints()
		if err != nil {
			return err
		}

		set, err := resolveSide(log, opts, hints, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if err := output.WriteSet(set, pickFormat(opts), flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	addResolveFlags(showCmd)
}
