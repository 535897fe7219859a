// SPDX-License-Identifier: MIT

package batch

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/bauer/completion"
)

const panicWorkersInvalid = "batch: WithWorkers: workers must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers    int                 // concurrent completions; default GOMAXPROCS
	completion []completion.Option // forwarded to completion.FromBauer
	logger     *zap.Logger         // never nil after gatherOptions
}

// DefaultOptions returns GOMAXPROCS workers, default completion options and
// a no-op logger.
func DefaultOptions() Options {
	return Options{
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
}

// Workers returns the configured concurrency limit.
func (o Options) Workers() int { return o.workers }

// WithWorkers bounds the number of completions in flight. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithCompletionOptions forwards options to every completion.FromBauer call.
func WithCompletionOptions(opts ...completion.Option) Option {
	return func(o *Options) { o.completion = append(o.completion, opts...) }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
