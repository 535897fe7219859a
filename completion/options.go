// SPDX-License-Identifier: MIT

package completion

import "github.com/katalvlaran/bauer/schur"

// DefaultWindow selects the classical window size n+1.
const DefaultWindow = 0

const panicWindowInvalid = "completion: WithWindow: window must be >= 0"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	window     int            // 0 ⇒ n+1; otherwise max(window, n+1)
	kernelOpts []schur.Option // forwarded to schur.LastRow
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{window: DefaultWindow}
}

// Window returns the configured Toeplitz window (0 means n+1).
func (o Options) Window() int { return o.window }

// WithWindow sets the Toeplitz window size m. Values smaller than n+1 are
// raised to n+1; 0 restores the default. Panics on negative m (programmer error).
func WithWindow(m int) Option {
	if m < 0 {
		panic(panicWindowInvalid)
	}

	return func(o *Options) { o.window = m }
}

// WithKernelOptions forwards options to the Schur kernel.
func WithKernelOptions(opts ...schur.Option) Option {
	return func(o *Options) { o.kernelOpts = append(o.kernelOpts, opts...) }
}

// gatherOptions folds setters over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
