package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlkata/brackets"
)

// BracketReport is the --explain result of the brackets command.
type BracketReport struct {
	Valid  bool   `json:"valid" yaml:"valid"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func (r BracketReport) String() string {
	if r.Valid {
		return "true"
	}
	return "false: " + r.Reason
}

// NewBracketsCommand creates the brackets command.
func NewBracketsCommand(rootOpts *RootOptions) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "brackets <text>",
		Short: "Check that ( ) [ ] { } are properly nested and closed",
		Example: `  lvlkata brackets "{[]}"
  lvlkata brackets --explain "([)]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			if !explain {
				valid := brackets.IsValid(args[0])
				rootOpts.Logger.Debug("brackets", zap.Int("len", len(args[0])), zap.Bool("valid", valid))
				return f.Success(valid)
			}

			report := BracketReport{Valid: true}
			if err := brackets.Check(args[0]); err != nil {
				report = BracketReport{Valid: false, Reason: err.Error()}
			}
			rootOpts.Logger.Debug("brackets", zap.Int("len", len(args[0])), zap.Bool("valid", report.Valid))
			return f.Success(report)
		},
	}
	cmd.Flags().BoolVar(&explain, "explain", false, "report why the text is invalid")

	return cmd
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "generate <pairs>",
		Short:   "List every well-formed sequence of n parenthesis pairs",
		Example: "  lvlkata generate 3",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid pair count", err)
			}
			seqs, err := brackets.Generate(n)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot generate", err)
			}
			rootOpts.Logger.Debug("generate", zap.Int("pairs", n), zap.Int("count", len(seqs)))
			return rootOpts.formatter(cmd).Success(seqs)
		},
	}
}
