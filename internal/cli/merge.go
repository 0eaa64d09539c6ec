package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkata/linkedlist"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <a> <b>",
		Short: "Merge two sorted comma-separated lists as linked chains",
		Long: `Builds a linked chain from each comma-separated list, checks both are
non-decreasing and prints the stable merge. Use "" for an empty list.`,
		Example: `  lvlkata merge 1,2,4 1,3,4
  lvlkata merge "" 0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			av, err := parseList(args[0])
			if err != nil {
				return err
			}
			bv, err := parseList(args[1])
			if err != nil {
				return err
			}

			merged, err := linkedlist.MergeSortedChecked(linkedlist.FromSlice(av), linkedlist.FromSlice(bv))
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot merge", err)
			}
			out := linkedlist.Values(merged)
			rootOpts.Logger.Debug("merge", zap.Int("a", len(av)), zap.Int("b", len(bv)), zap.Int("merged", len(out)))

			return rootOpts.formatter(cmd).Success(out)
		},
	}
}
