package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/confstack/confstack/internal/inspect"
	"github.com/confstack/confstack/internal/logging"
	"github.com/confstack/confstack/internal/output"
	"github.com/confstack/confstack/internal/settings"
)

// Shared resolution flags
var (
	flagMode      string
	flagFormat    string
	flagOut       string
	flagOverlays  []string
	flagHintsFile string
	flagDelimiter string
	flagExitCode  bool
	flagVerbose   bool
)

func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringArrayVar(&flagOverlays, "overlay", nil, "Extra source locator layered before the positional locators (repeatable)")
	cmd.Flags().StringVar(&flagHintsFile, "hints", "", "Hints file declaring KEY=type[:default] coercions")
	cmd.Flags().StringVar(&flagDelimiter, "delimiter", "", "List coercion delimiter (default: \",\")")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
}

var diffCmd = &cobra.Command{
	Use:   "diff <locatorA> <locatorB>",
	Short: "Resolve two source locators and report differing keys",
	Long: `Diff resolves each locator over the built-in defaults (plus any
--overlay layers, applied first to both sides) and compares the two
resulting settings sets key by key.

Default mode lists every key with unchanged keys annotated; unified mode
prints only changed keys as patch-style -/+ lines.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		log := logging.New(flagVerbose || opts.Verbose)

		mode, err := inspect.ParseMode(flagMode)
		if err != nil {
			return err
		}

		hints, err := buildHints()
		if err != nil {
			return err
		}

		setA, err := resolveSide(log, opts, hints, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		setB, err := resolveSide(log, opts, hints, args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		entries, err := inspect.Diff(setA, setB, mode)
		if err != nil {
			return err
		}
		report := inspect.BuildReport(args[0], args[1], mode, entries)
		log.Debug().Int("total", report.Summary.Total).Int("changed", report.Summary.Changed).Msg("comparison finished")

		if err := output.WriteReport(report, pickFormat(opts), flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if flagExitCode && report.Summary.Changed > 0 {
			exitCode = ExitDifferences
		}
		return nil
	},
}

func init() {
	addResolveFlags(diffCmd)
	diffCmd.Flags().StringVar(&flagMode, "mode", string(inspect.ModeDefault), "Diff mode (default, unified)")
	diffCmd.Flags().BoolVar(&flagExitCode, "exit-code", false, "Exit 1 when differences are found")
}

// resolveSide builds one side of a comparison: defaults, then each
// --overlay layer in order, then the positional locator on top.
func resolveSide(log zerolog.Logger, opts Options, hints settings.Hints, locator string) (settings.Set, error) {
	locators := make([]string, 0, len(flagOverlays)+1)
	locators = append(locators, flagOverlays...)
	locators = append(locators, locator)

	log.Debug().Strs("layers", locators).Msg("resolving")
	return settings.ResolveAll(settings.Defaults(), locators, hints,
		settings.WithDelimiter(pickDelimiter(opts)))
}

// buildHints merges the built-in baseline hints with declarations from
// --hints, the file winning on collision.
func buildHints() (settings.Hints, error) {
	hints := settings.DefaultHints()
	if flagHintsFile == "" {
		return hints, nil
	}
	fileHints, err := settings.LoadHints(flagHintsFile)
	if err != nil {
		return nil, err
	}
	return hints.Merge(fileHints), nil
}

func pickFormat(opts Options) string {
	if flagFormat != "" {
		return flagFormat
	}
	return opts.Format
}

func pickDelimiter(opts Options) string {
	if flagDelimiter != "" {
		return flagDelimiter
	}
	return opts.Delimiter
}
