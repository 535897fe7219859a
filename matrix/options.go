// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and residual
// verification. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/Inf at all.
//   - reference selects the factorization VerifyLastRow compares against.
//     Both references are deterministic and agree to round-off on SPD input.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultReference selects gonum's mat.Cholesky as the verification reference.
	DefaultReference = ReferenceGonum
)

// Reference names a dense factorization used by VerifyLastRow.
type Reference int

const (
	// ReferenceGonum factors the Toeplitz view with gonum's mat.Cholesky.
	ReferenceGonum Reference = iota
	// ReferenceDense factors a materialized *Dense with this package's Cholesky.
	ReferenceDense
)

// String implements fmt.Stringer.
func (r Reference) String() string {
	switch r {
	case ReferenceGonum:
		return "gonum"
	case ReferenceDense:
		return "dense"
	default:
		return "unknown"
	}
}

// ---------- Panic messages (programmer errors) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite and >= 0"
	panicReferenceInvalid = "matrix: WithReference: unknown reference"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64   // tolerance for symmetry checks
	validateNaNInf bool      // reject NaN/Inf in constructors and Set
	reference      Reference // VerifyLastRow reference factorization
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		reference:      DefaultReference,
	}
}

// Epsilon returns the configured tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether NaN/Inf values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Reference returns the configured verification reference.
func (o Options) Reference() Reference { return o.reference }

// WithEpsilon sets the tolerance. Panics on negative, NaN or Inf eps.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) || eps > maxFinite {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value checks.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value checks; NaN/Inf propagate.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithReference selects the reference factorization for VerifyLastRow.
func WithReference(ref Reference) Option {
	if ref != ReferenceGonum && ref != ReferenceDense {
		panic(panicReferenceInvalid)
	}

	return func(o *Options) { o.reference = ref }
}

// gatherOptions folds setters over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
