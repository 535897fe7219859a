// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bauer/completion"
	"github.com/katalvlaran/bauer/lalg"
	"github.com/katalvlaran/bauer/lpoly"
)

// CompleteResult is the output of `bauer complete`.
type CompleteResult struct {
	Name   string    `json:"name,omitempty"`
	X      []float64 `json:"x"`
	Dmin   int       `json:"dmin"`
	Defect float64   `json:"defect"`
}

func (r CompleteResult) String() string {
	prefix := ""
	if r.Name != "" {
		prefix = r.Name + ": "
	}
	return fmt.Sprintf("%sx = %s from degree %d (defect %.3g)", prefix, formatFloats(r.X), r.Dmin, r.Defect)
}

func newCompleteResult(name string, g lalg.Element) CompleteResult {
	return CompleteResult{Name: name, X: g.B.Coefs(), Dmin: g.B.Dmin(), Defect: g.Defect()}
}

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dmin       int
		window     int
		noValidate bool
	)

	cmd := &cobra.Command{
		Use:   "complete <c0> [c1 ...]",
		Short: "Complete a causal polynomial into a unimodular pair",
		Long: `Complete p = c0·z^dmin + c1·z^(dmin+1) + ... with Bauer's method.

Prints the companion x, its lowest degree -n, and the unitarity defect
max|p·~p + x·~x - 1|. A larger --window shrinks the defect.
Put -- before the coefficients when any of them is negative.`,
		Args:         minArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = rootOpts.Config.Window
			}
			return runComplete(rootOpts, cmd, args, dmin, window, noValidate)
		},
	}

	cmd.Flags().IntVar(&dmin, "dmin", 0, "degree of the first coefficient")
	cmd.Flags().IntVar(&window, "window", 0, "Toeplitz window (0 means n+1)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "disable eager domain validation")

	return cmd
}

func runComplete(opts *RootOptions, cmd *cobra.Command, args []string, dmin, window int, noValidate bool) error {
	f := opts.formatter(cmd)
	coefs, err := parseFloats(args)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeInput, err)
	}
	if window < 0 {
		return f.fail(ExitCommandError, ErrCodeInput, fmt.Errorf("window must be >= 0, got %d", window))
	}

	p := lpoly.New(coefs, dmin)
	g, err := completion.FromBauer(p, opts.completionOptions(window, noValidate)...)
	if err != nil {
		return domainFailure(f, err)
	}
	res := newCompleteResult("", g)
	opts.Logger.Debug("complete",
		zap.Int("degree", p.Degree()),
		zap.Int("window", window),
		zap.Float64("defect", res.Defect),
	)

	return f.Success(res)
}

func (o *RootOptions) completionOptions(window int, noValidate bool) []completion.Option {
	return []completion.Option{
		completion.WithWindow(window),
		completion.WithKernelOptions(o.kernelOptions(noValidate)...),
	}
}
