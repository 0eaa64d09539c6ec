package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkata/bitstring"
	"github.com/katalvlaran/lvlkata/search"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:     "search --target N <sorted num>...",
		Short:   "Binary search a sorted list; prints the index or -1",
		Example: "  lvlkata search --target 9 -- -1 0 3 5 9 12",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			idx := search.Binary(nums, target)
			rootOpts.Logger.Debug("search", zap.Int("n", len(nums)), zap.Int("target", target), zap.Int("index", idx))
			return rootOpts.formatter(cmd).Success(idx)
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "value to look for")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// NewAddBinaryCommand creates the addbinary command.
func NewAddBinaryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "addbinary <a> <b>",
		Short:   "Add two binary numbers given as strings of 0 and 1",
		Example: "  lvlkata addbinary 11 1",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := bitstring.Add(args[0], args[1])
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot add", err)
			}
			rootOpts.Logger.Debug("addbinary", zap.Int("bits", len(sum)))
			return rootOpts.formatter(cmd).Success(sum)
		},
	}
}
