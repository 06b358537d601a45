// SPDX-License-Identifier: MIT
// Package polyroot: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w and call-site
// context); tests match them via errors.Is.

package polyroot

import "errors"

var (
	// ErrNonConvergence is returned when Laguerre refinement exhausts its
	// iteration budget (degree × IterationsPerDegree) without meeting the
	// round-off bound. FindAll propagates it and discards partial results.
	ErrNonConvergence = errors.New("polyroot: root refinement did not converge")

	// ErrEmptyPolynomial is returned for a coefficient sequence of length zero.
	// A zero leading coefficient is NOT detected; see Polynomial.
	ErrEmptyPolynomial = errors.New("polyroot: empty coefficient sequence")
)
