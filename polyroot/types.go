// SPDX-License-Identifier: MIT

// Package polyroot: value types (Polynomial, Roots) and their O(n) helpers.
// Coefficient order is fixed package-wide: index 0 is the constant term,
// index len-1 the leading term.
package polyroot

import (
	"math"
	"math/cmplx"
)

// MachineEpsilon is the float64 unit round-off used by the convergence bound
// and by near-real normalization.
const MachineEpsilon = 2.220446049250313e-16

// nearRealFactor scales MachineEpsilon in the |Im| ≤ k·eps·|Re| test.
const nearRealFactor = 2.0

// Polynomial is an ordered sequence of complex coefficients from the constant
// term to the leading term. Degree() == len(p)-1.
//
// Invariant (caller-guarded): p[len(p)-1] != 0. A zero leading coefficient is
// undefined behaviour for Refine and FindAll.
type Polynomial []complex128

// Roots is an ordered sequence of complex roots. FindAll returns it sorted
// ascending by real part with ties kept in discovery order.
type Roots []complex128

// FromReal builds a Polynomial from real coefficients (constant term first).
func FromReal(coeffs ...float64) Polynomial {
	p := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		p[i] = complex(c, 0)
	}

	return p
}

// FromRoots expands the monic product Π (x − r_k).
// FromRoots() returns the constant polynomial 1.
//
// Complexity: O(n²) for n roots.
func FromRoots(roots ...complex128) Polynomial {
	p := Polynomial{1}
	var i int
	for _, r := range roots {
		next := make(Polynomial, len(p)+1)
		for i = 0; i < len(p); i++ {
			next[i+1] += p[i]   // x · p
			next[i] -= r * p[i] // −r · p
		}
		p = next
	}

	return p
}

// Degree returns len(p)-1 (−1 for an empty polynomial).
func (p Polynomial) Degree() int { return len(p) - 1 }

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	return append(Polynomial(nil), p...)
}

// Eval evaluates p at x with Horner's scheme. Eval of an empty polynomial is 0.
func (p Polynomial) Eval(x complex128) complex128 {
	var b complex128
	for j := len(p) - 1; j >= 0; j-- {
		b = x*b + p[j]
	}

	return b
}

// Deflate divides p by (x − root) using synthetic division and returns the
// quotient (degree−1) and the remainder p(root).
// For len(p) <= 1 the quotient is empty and the remainder is p's value.
//
// Complexity: O(degree).
func (p Polynomial) Deflate(root complex128) (Polynomial, complex128) {
	m := p.Degree()
	if m < 1 {
		return Polynomial{}, p.Eval(root)
	}
	q := make(Polynomial, m)
	b := p[m]
	for k := m - 1; k >= 0; k-- {
		q[k] = b
		b = root*b + p[k]
	}

	return q, b
}

// IsNearlyReal reports whether |Im z| ≤ tol·|Re z|.
func IsNearlyReal(z complex128, tol float64) bool {
	return math.Abs(imag(z)) <= tol*math.Abs(real(z))
}

// snapReal drops a negligible imaginary part (|Im| ≤ 2·eps·|Re|).
func snapReal(z complex128) complex128 {
	if IsNearlyReal(z, nearRealFactor*MachineEpsilon) {
		return complex(real(z), 0)
	}

	return z
}

// SortByReal sorts r in place ascending by real part.
// Insertion sort: stable (equal real parts keep their order) and idempotent.
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func SortByReal(r Roots) {
	var (
		i, j int
		x    complex128
	)
	for j = 1; j < len(r); j++ {
		x = r[j]
		for i = j - 1; i >= 0; i-- {
			if real(r[i]) <= real(x) {
				break
			}
			r[i+1] = r[i]
		}
		r[i+1] = x
	}
}

// MaxReal returns the root with the largest real part, comparing real parts
// only (imaginary parts are ignored). The first maximum wins. An empty set
// yields (0, false).
func (r Roots) MaxReal() (complex128, bool) {
	if len(r) == 0 {
		return 0, false
	}
	best := r[0]
	for _, z := range r[1:] {
		if real(z) > real(best) {
			best = z
		}
	}

	return best, true
}

// Real returns the real parts of the roots whose imaginary part is negligible
// (|Im| ≤ tol·|Re|), in order.
func (r Roots) Real(tol float64) []float64 {
	out := make([]float64, 0, len(r))
	for _, z := range r {
		if IsNearlyReal(z, tol) {
			out = append(out, real(z))
		}
	}

	return out
}

// Residual returns max_k |p(r_k)|, a cheap a-posteriori accuracy check.
func (p Polynomial) Residual(r Roots) float64 {
	var worst float64
	for _, z := range r {
		if v := cmplx.Abs(p.Eval(z)); v > worst {
			worst = v
		}
	}

	return worst
}
