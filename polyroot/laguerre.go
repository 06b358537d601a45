// SPDX-License-Identifier: MIT

package polyroot

import (
	"fmt"
	"math/cmplx"
)

// IterationsPerDegree multiplies the polynomial degree to give Refine's
// iteration budget, and is also the period of the cycle-breaking step.
const IterationsPerDegree = 10

// breakFractions are applied, in turn, to every IterationsPerDegree-th step
// instead of the full Laguerre step so a limit cycle cannot persist.
var breakFractions = [...]float64{0.5, 0.25, 0.75, 0.13, 0.38, 0.62, 0.88, 1.0}

// Refine improves guess towards a root of p with Laguerre's method.
//
// Algorithm Outline (one iteration, m = degree):
//  1. Horner-evaluate b = p(x), d = p'(x), f = p''(x)/2 and the round-off
//     bound eps · Σ|b_j|·|x|^k accumulated alongside b.
//  2. |b| ≤ bound ⇒ x is a root to working precision: return it.
//  3. G = d/b, H = G² − 2f/b, sq = √((m−1)(m·H − G²)).
//  4. Pick the larger of |G+sq| and |G−sq| (tie keeps G+sq) as denominator;
//     step = m/denominator, or Rect(1+|x|, iter) when both are zero.
//  5. x − step == x ⇒ no further progress is representable: return x.
//  6. Take the full step, except every IterationsPerDegree-th iteration which
//     takes breakFractions[(iter/IterationsPerDegree − 1) mod 8] of it.
//
// Budget:
//
//	degree × IterationsPerDegree iterations, then ErrNonConvergence.
//	A constant polynomial therefore fails immediately: it has no root.
//
// Errors:
//   - ErrEmptyPolynomial  — len(p) == 0.
//   - ErrNonConvergence   — budget exhausted (wrapped with degree and last x).
//
// Complexity:
//
//	O(degree) per iteration, O(degree²) worst case.
func Refine(p Polynomial, guess complex128) (complex128, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPolynomial
	}

	var (
		m       = p.Degree()
		md      = complex(float64(m), 0)
		maxIter = m * IterationsPerDegree
		x       = guess
		x1, dx  complex128
		b, d, f complex128
		g, g2   complex128
		h, sq   complex128
		gp, gm  complex128
		bound   float64
		abx     float64
		abp     float64
		abm     float64
		iter, j int
	)
	for iter = 1; iter <= maxIter; iter++ {
		// Stage 1: p, p', p''/2 and the accumulated round-off bound.
		b = p[m]
		bound = cmplx.Abs(b)
		d, f = 0, 0
		abx = cmplx.Abs(x)
		for j = m - 1; j >= 0; j-- {
			f = x*f + d
			d = x*d + b
			b = x*b + p[j]
			bound = cmplx.Abs(b) + abx*bound
		}
		bound *= MachineEpsilon

		// Stage 2: converged within round-off.
		if cmplx.Abs(b) <= bound {
			return x, nil
		}

		// Stage 3: Laguerre denominators from the logarithmic derivatives.
		g = d / b
		g2 = g * g
		h = g2 - 2*f/b
		sq = cmplx.Sqrt(complex(float64(m-1), 0) * (md*h - g2))
		gp = g + sq
		gm = g - sq
		abp = cmplx.Abs(gp)
		abm = cmplx.Abs(gm)
		if abp < abm {
			gp = gm
		}

		// Stage 4: step size, with a deterministic kick when both vanish.
		if max(abp, abm) > 0 {
			dx = md / gp
		} else {
			dx = cmplx.Rect(1+abx, float64(iter))
		}

		// Stage 5: no representable change ⇒ done.
		x1 = x - dx
		if x1 == x {
			return x, nil
		}

		// Stage 6: full step, or a fractional one to break limit cycles.
		if iter%IterationsPerDegree != 0 {
			x = x1
		} else {
			x -= complex(breakFractions[(iter/IterationsPerDegree-1)%len(breakFractions)], 0) * dx
		}
	}

	return x, fmt.Errorf("Refine: degree %d, last estimate %v after %d iterations: %w",
		m, x, maxIter, ErrNonConvergence)
}
