package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkata/twosum"
)

// TwoSumOptions holds flags for the twosum command.
type TwoSumOptions struct {
	*RootOptions
	Target int
	Latest bool
	Sorted bool
}

// NewTwoSumCommand creates the twosum command.
func NewTwoSumCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TwoSumOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "twosum --target N <num>...",
		Short: "Find two positions whose values add up to a target",
		Long: `Prints the first index pair [i j] (i < j) with nums[i] + nums[j] == target,
scanning left to right, or [] when there is none.

With --sorted the numbers must be non-decreasing and a two-pointer walk is used.`,
		Example: `  lvlkata twosum --target 9 2 7 11 15
  lvlkata twosum --target 3 --latest 1 1 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTwoSum(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Target, "target", 0, "target sum")
	cmd.Flags().BoolVar(&opts.Latest, "latest", false, "pair with the most recent index of a repeated value")
	cmd.Flags().BoolVar(&opts.Sorted, "sorted", false, "input is sorted; use two pointers")
	_ = cmd.MarkFlagRequired("target")
	cmd.MarkFlagsMutuallyExclusive("sorted", "latest")

	return cmd
}

func runTwoSum(cmd *cobra.Command, args []string, opts *TwoSumOptions) error {
	nums, err := parseInts(args)
	if err != nil {
		return err
	}
	opts.Logger.Debug("twosum",
		zap.Ints("nums", nums),
		zap.Int("target", opts.Target),
		zap.Bool("sorted", opts.Sorted),
		zap.Bool("latest", opts.Latest))

	var pair []int
	switch {
	case opts.Sorted:
		pair = twosum.FindPairSorted(nums, opts.Target)
	case opts.Latest:
		pair = twosum.FindPair(nums, opts.Target, twosum.WithDuplicatePolicy(twosum.KeepLatest))
	default:
		pair = twosum.FindPair(nums, opts.Target)
	}

	return opts.formatter(cmd).Success(pair)
}

// NewThreeSumCommand creates the threesum command.
func NewThreeSumCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "threesum <num>...",
		Short:   "List the distinct value triples that sum to zero",
		Example: "  lvlkata threesum -- -1 0 1 2 -1 -4",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			triples := twosum.ThreeSum(nums)
			rootOpts.Logger.Debug("threesum", zap.Int("n", len(nums)), zap.Int("triples", len(triples)))

			out := make([][]int, len(triples))
			for i, t := range triples {
				out[i] = []int{t[0], t[1], t[2]}
			}
			return rootOpts.formatter(cmd).Success(out)
		},
	}
}
