// SPDX-License-Identifier: MIT

// Package schur: functional configuration for the Toeplitz kernels.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes behavior and is covered by tests.
package schur

// DefaultValidate toggles eager domain validation (finite input, positive
// leading entry, |rho| < 1 at every step).
const DefaultValidate = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validate bool // DefaultValidate
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{validate: DefaultValidate}
}

// Validate reports whether eager validation is enabled.
func (o Options) Validate() bool { return o.validate }

// WithValidation enables fail-fast domain checks (default).
//
// Behavior highlights:
//   - Non-finite input → ErrNaNInf before any arithmetic.
//   - v[0] ≤ 0 (unless the whole sequence is zero) → ErrNonPositiveLead.
//   - |rho| ≥ 1 at iteration k → ErrNotPositiveDefinite, tagged with k.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithoutValidation disables domain checks.
//
// Behavior highlights:
//   - A non positive-definite input makes sqrt see a negative argument; the
//     resulting NaN propagates into the returned row and the error is nil.
//
// Notes:
//   - Useful to reproduce numerical traces bit for bit. Callers own the
//     positive-definiteness precondition in this mode.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
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
