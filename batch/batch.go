// SPDX-License-Identifier: MIT

// Package batch completes many independent polynomials concurrently.
//
// Each input is handed to completion.FromBauer on a bounded errgroup. Results
// keep input order; the first failure cancels the remaining work.
package batch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bauer/completion"
	"github.com/katalvlaran/bauer/lalg"
	"github.com/katalvlaran/bauer/lpoly"
)

// IndexError records which input failed.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("batch: input %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error { return e.Err }

// Complete runs completion.FromBauer for every input and returns the
// elements in input order.
//
// The first error (wrapped in *IndexError) cancels the shared context so
// queued inputs are skipped. A cancelled ctx returns ctx.Err().
func Complete(ctx context.Context, inputs []lpoly.Poly, opts ...Option) ([]lalg.Element, error) {
	o := gatherOptions(opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]lalg.Element, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			el, err := completion.FromBauer(inputs[i], o.completion...)
			if err != nil {
				o.logger.Debug("completion failed", zap.Int("index", i), zap.Error(err))
				return &IndexError{Index: i, Err: err}
			}
			out[i] = el
			o.logger.Debug("completed",
				zap.Int("index", i),
				zap.Int("degree", inputs[i].Degree()),
				zap.Float64("defect", el.Defect()),
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o.logger.Info("batch complete",
		zap.Int("inputs", len(inputs)),
		zap.Int("workers", o.workers),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}
