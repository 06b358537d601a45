// SPDX-License-Identifier: MIT

// Package eos: functional configuration for the solvers.
//
// Defaults are the single source of truth for zero-value behavior; WithX
// constructors panic only on nonsensical values (programmer error).
package eos

import (
	"log/slog"
	"math"
)

const (
	// DefaultGasConstant is R in J/(mol·K).
	DefaultGasConstant = 8.3145

	// DefaultReferenceTemperature is the enthalpy datum in K.
	DefaultReferenceTemperature = 298.15

	// DefaultRealRootSelection keeps the largest-real-part rule over all
	// cubic roots, complex ones included.
	DefaultRealRootSelection = false

	// RealRootTolerance is the |Im|/|Re| ratio under which a cubic root
	// counts as real when real-root selection is on.
	RealRootTolerance = 1e-9
)

const (
	panicGasConstantInvalid = "eos: WithGasConstant: r must be finite and > 0"
	panicReferenceInvalid   = "eos: WithReferenceTemperature: t must be finite and > 0"
	panicLoggerNil          = "eos: WithLogger: logger must be non-nil"
	panicTranslationInvalid = "eos: WithVolumeTranslation: constants must be finite"
)

// Option mutates solver options.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	r           float64            // DefaultGasConstant
	t0          float64            // DefaultReferenceTemperature
	translation map[string]float64 // empty ⇒ no volume translation
	realRoots   bool               // DefaultRealRootSelection
	logger      *slog.Logger       // slog.Default() when nil
}

func defaultOptions() options {
	return options{
		r:         DefaultGasConstant,
		t0:        DefaultReferenceTemperature,
		realRoots: DefaultRealRootSelection,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// WithGasConstant overrides R (J/(mol·K)).
// Panics if r is not finite and positive.
func WithGasConstant(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(panicGasConstantInvalid)
	}

	return func(o *options) { o.r = r }
}

// WithReferenceTemperature overrides the enthalpy datum T0 (K).
// Panics if t is not finite and positive.
func WithReferenceTemperature(t float64) Option {
	if !(t > 0) || math.IsInf(t, 0) {
		panic(panicReferenceInvalid)
	}

	return func(o *options) { o.t0 = t }
}

// WithVolumeTranslation enables Péneloux volume translation with constants
// keyed by component name. The map is copied. An empty or nil table leaves
// translation disabled; see PenelouxTable for published values.
// Panics on NaN or ±Inf constants.
func WithVolumeTranslation(table map[string]float64) Option {
	cp := make(map[string]float64, len(table))
	for name, c := range table {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			panic(panicTranslationInvalid)
		}
		cp[name] = c
	}

	return func(o *options) { o.translation = cp }
}

// WithRealRootSelection restricts the compressibility root to cubic roots
// with a negligible imaginary part, falling back to the unrestricted rule
// when there is none.
func WithRealRootSelection() Option {
	return func(o *options) { o.realRoots = true }
}

// WithLogger routes construction diagnostics to logger.
// Panics if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = logger }
}
