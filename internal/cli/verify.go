// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bauer/matrix"
	"github.com/katalvlaran/bauer/schur"
)

// VerifyResult is the output of `bauer verify`.
type VerifyResult struct {
	Row      []float64       `json:"row"`
	Residual matrix.Residual `json:"residual"`
	OK       bool            `json:"ok"`
}

func (r VerifyResult) String() string {
	return fmt.Sprintf("row: %s\nreference: %s\nrow error: %.3g\nreconstruction error: %.3g\nfactor error: %.3g\nok: %v",
		formatFloats(r.Row), r.Residual.Reference, r.Residual.RowError, r.Residual.ReconstructionError,
		r.Residual.FactorError, r.OK)
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		reference string
		tol       float64
	)

	cmd := &cobra.Command{
		Use:   "verify <v0> [v1 ...]",
		Short: "Check the Schur kernel against a dense Cholesky factorization",
		Long: `Run the Schur kernel, factor the same Toeplitz matrix densely and report
the deviation of the last row and the reconstruction error of T's last row.
Exits with status 1 when either error exceeds --tol.`,
		Args:         minArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, cmd, args, reference, tol)
		},
	}

	cmd.Flags().StringVar(&reference, "reference", matrix.ReferenceGonum.String(), "dense reference (gonum|dense)")
	cmd.Flags().Float64Var(&tol, "tol", matrix.DefaultEpsilon, "maximum accepted error")

	return cmd
}

func runVerify(opts *RootOptions, cmd *cobra.Command, args []string, reference string, tol float64) error {
	f := opts.formatter(cmd)
	v, err := parseFloats(args)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeInput, err)
	}
	var ref matrix.Reference
	switch reference {
	case matrix.ReferenceGonum.String():
		ref = matrix.ReferenceGonum
	case matrix.ReferenceDense.String():
		ref = matrix.ReferenceDense
	default:
		return f.fail(ExitCommandError, ErrCodeInput, fmt.Errorf("unknown reference %q", reference))
	}

	row, err := schur.LastRow(v, opts.kernelOptions(false)...)
	if err != nil {
		return domainFailure(f, err)
	}
	res, err := matrix.VerifyLastRow(v, row, matrix.WithReference(ref))
	if err != nil {
		return domainFailure(f, err)
	}
	out := VerifyResult{Row: row, Residual: res, OK: res.OK(tol)}
	if err := f.Success(out); err != nil {
		return err
	}
	if !out.OK {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: residual above %g", ErrCodeVerify, tol))
	}

	return nil
}
