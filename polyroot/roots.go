// SPDX-License-Identifier: MIT

package polyroot

import "fmt"

// FindAll returns all degree roots of p, sorted ascending by real part.
//
// Algorithm Outline:
//  1. Deflation: for slot j = degree−1 down to 0, Refine the current quotient
//     (degree j+1) starting from 0, snap a near-real result to the real axis
//     (|Im| ≤ 2·eps·|Re|), store it in slot j and divide it out. The last
//     quotient is linear, so the final slot is filled by the same mechanics.
//  2. Polishing: Refine every stored root again on the ORIGINAL p, using the
//     deflated estimate as the starting guess.
//  3. Ordering: SortByReal (stable insertion sort).
//
// Errors:
//   - ErrEmptyPolynomial — len(p) == 0.
//   - ErrNonConvergence  — any refinement failed; no partial result is returned.
//
// A constant polynomial (degree 0) has no roots: FindAll returns an empty set.
//
// Complexity:
//
//	O(degree²) Laguerre iterations, O(degree²) sort; degree is 3 or 4 in
//	practice so the quadratic sort is irrelevant.
func FindAll(p Polynomial) (Roots, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPolynomial
	}

	var (
		m       = p.Degree()
		results = make(Roots, m)
		work    = p.Clone()
		x       complex128
		err     error
		j       int
	)

	// Stage 1: peel roots off the shrinking quotient.
	for j = m - 1; j >= 0; j-- {
		x, err = Refine(work, 0)
		if err != nil {
			return nil, fmt.Errorf("FindAll: deflation step %d: %w", m-1-j, err)
		}
		x = snapReal(x)
		results[j] = x
		work, _ = work.Deflate(x)
	}

	// Stage 2: polish against the undeflated polynomial.
	for j = 0; j < m; j++ {
		results[j], err = Refine(p, results[j])
		if err != nil {
			return nil, fmt.Errorf("FindAll: polishing root %d: %w", j, err)
		}
	}

	// Stage 3: ascending by real part, ties in discovery order.
	SortByReal(results)

	return results, nil
}
