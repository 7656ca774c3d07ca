package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confstack/confstack/internal/output"
	"github.com/confstack/confstack/internal/settings"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the built-in baseline keys and their default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		if err := output.WriteSet(settings.Defaults(), pickFormat(opts), flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}
