package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags and shared state for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"

	// Logger is built in PersistentPreRunE unless already set.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Execute runs the lvlkata command line. The logger is flushed whether or
// not the command fails.
func Execute() error {
	opts := &RootOptions{}
	return run(newRootCommand(opts), opts)
}

func run(cmd *cobra.Command, opts *RootOptions) error {
	defer func() {
		if opts.Logger != nil {
			_ = opts.Logger.Sync()
		}
	}()
	return cmd.Execute()
}

// newRootCommand creates the root command for the lvlkata CLI.
func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvlkata",
		Short: "lvlkata - classic algorithm exercises",
		Long: `lvlkata runs small textbook algorithms on command-line input:
two-sum lookup, bracket validation, sorted chain merging, binary search
and binary string addition.

Negative numbers must follow "--" so they are not read as flags:
  lvlkata search --target -1 -- -3 -1 4`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if opts.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.Logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose (debug) logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")

	cmd.AddCommand(NewTwoSumCommand(opts))
	cmd.AddCommand(NewThreeSumCommand(opts))
	cmd.AddCommand(NewBracketsCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewAddBinaryCommand(opts))

	return cmd
}

// formatter returns an OutputFormatter bound to the command's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: o.Format,
		Writer: cmd.OutOrStdout(),
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
