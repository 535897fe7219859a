// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bauer/batch"
	"github.com/katalvlaran/bauer/internal/config"
	"github.com/katalvlaran/bauer/lpoly"
)

// BatchResult is the output of `bauer batch`.
type BatchResult struct {
	Results []CompleteResult `json:"results"`
}

func (r BatchResult) String() string {
	lines := make([]string, len(r.Results))
	for i, c := range r.Results {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Complete every polynomial listed in a YAML file",
		Long: `Read inputs: [{name, coefs, dmin}] from a YAML file and complete them
concurrently. Worker count and window come from the configuration file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = rootOpts.Config.Window
			}
			return runBatch(cmd.Context(), rootOpts, cmd, args[0], window)
		},
	}

	cmd.Flags().IntVar(&window, "window", 0, "Toeplitz window (0 means n+1)")

	return cmd
}

func runBatch(ctx context.Context, opts *RootOptions, cmd *cobra.Command, path string, window int) error {
	f := opts.formatter(cmd)
	if ctx == nil {
		ctx = context.Background()
	}
	bf, err := config.LoadBatch(path)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeInput, err)
	}
	if window < 0 {
		return f.fail(ExitCommandError, ErrCodeInput, errors.New("window must be >= 0"))
	}

	inputs := make([]lpoly.Poly, len(bf.Inputs))
	for i, in := range bf.Inputs {
		inputs[i] = lpoly.New(in.Coefs, in.Dmin)
	}
	elements, err := batch.Complete(ctx, inputs,
		batch.WithWorkers(opts.workers()),
		batch.WithCompletionOptions(opts.completionOptions(window, false)...),
		batch.WithLogger(opts.Logger),
	)
	if err != nil {
		return domainFailure(f, err)
	}

	res := BatchResult{Results: make([]CompleteResult, len(elements))}
	for i, g := range elements {
		res.Results[i] = newCompleteResult(bf.Inputs[i].Name, g)
	}

	return f.Success(res)
}
