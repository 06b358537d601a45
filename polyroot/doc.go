// Package polyroot finds all complex roots of a polynomial with complex
// coefficients.
//
// 🚀 How it works
//
//	FindAll peels roots off one at a time:
//	  • Refine   — Laguerre iteration from a starting guess (cubic convergence
//	               near simple roots, globally convergent in practice)
//	  • Deflate  — synthetic division by the root just found
//	  • Polish   — every deflated root is refined again on the ORIGINAL
//	               polynomial to cancel the round-off deflation accumulates
//	  • Order    — stable insertion sort, ascending by real part
//
// ✨ Key properties:
//   - no state between calls; every function is reentrant
//   - deterministic: no randomness, the cycle-breaking step direction is
//     derived from the iteration index
//   - bounded: at most degree × IterationsPerDegree Laguerre steps per root,
//     then ErrNonConvergence
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gaseos/polyroot"
//
//	// x³ − 6x² + 11x − 6, constant term first
//	p := polyroot.FromReal(-6, 11, -6, 1)
//	roots, err := polyroot.FindAll(p)
//	// roots ≈ [1, 2, 3]
//
// Coefficients are always ordered from the constant term to the leading term.
// A zero leading coefficient is undefined behaviour; guard it at the call site.
//
// Performance:
//
//   - Refine:  O(degree) per iteration
//   - FindAll: O(degree²) iterations overall plus an O(degree²) sort
package polyroot
