// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bauer/completion"
	"github.com/katalvlaran/bauer/matrix"
	"github.com/katalvlaran/bauer/schur"
)

// SchurResult is the output of `bauer schur`.
type SchurResult struct {
	Row         []float64 `json:"row"`
	Reflections []float64 `json:"reflections,omitempty"`
}

func (r SchurResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "row: %s", formatFloats(r.Row))
	if r.Reflections != nil {
		fmt.Fprintf(&sb, "\nreflections: %s", formatFloats(r.Reflections))
	}
	return sb.String()
}

// NewSchurCommand creates the schur command.
func NewSchurCommand(rootOpts *RootOptions) *cobra.Command {
	var reflections, noValidate bool

	cmd := &cobra.Command{
		Use:   "schur <v0> [v1 ...]",
		Short: "Last row of the Cholesky factor of a Toeplitz matrix",
		Long: `Compute the last row of L, where T = L·Lᵀ and T[i][j] = v[|i-j|].

The row is printed in lag order: entry k is L[n-1][n-1-k], so entry 0 is the
diagonal element. Put -- before the values when any of them is negative.`,
		Args:         minArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchur(rootOpts, cmd, args, reflections, noValidate)
		},
	}

	cmd.Flags().BoolVar(&reflections, "reflections", false, "also print the reflection coefficients")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "disable eager domain validation (NaN propagates)")

	return cmd
}

func runSchur(opts *RootOptions, cmd *cobra.Command, args []string, reflections, noValidate bool) error {
	f := opts.formatter(cmd)
	v, err := parseFloats(args)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeInput, err)
	}

	kopts := opts.kernelOptions(noValidate)
	row, err := schur.LastRow(v, kopts...)
	if err != nil {
		return domainFailure(f, err)
	}
	res := SchurResult{Row: row}
	if reflections {
		if res.Reflections, err = schur.Reflections(v, kopts...); err != nil {
			return domainFailure(f, err)
		}
	}
	opts.Logger.Debug("schur", zap.Int("n", len(v)))

	return f.Success(res)
}

// kernelOptions maps configuration onto schur options.
func (o *RootOptions) kernelOptions(noValidate bool) []schur.Option {
	if noValidate || !o.Config.Validate {
		return []schur.Option{schur.WithoutValidation()}
	}
	return []schur.Option{schur.WithValidation()}
}

// domainFailure classifies err: inputs outside the mathematical domain exit
// with ExitFailure, anything else is a command error.
func domainFailure(f *OutputFormatter, err error) error {
	for _, target := range []error{
		schur.ErrNonPositiveLead,
		schur.ErrNotPositiveDefinite,
		schur.ErrNaNInf,
		completion.ErrNegativeDegree,
		completion.ErrNotCausal,
		matrix.ErrNotPositiveDefinite,
		matrix.ErrNaNInf,
	} {
		if errors.Is(err, target) {
			return f.fail(ExitFailure, ErrCodeDomain, err)
		}
	}
	return f.fail(ExitCommandError, ErrCodeInput, err)
}
