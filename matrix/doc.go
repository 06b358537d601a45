// Package matrix offers a small dense, row-major float64 matrix used for
// pairwise coefficient tables (binary interaction parameters, combined
// attraction terms) and the few linear-algebra kernels built on it.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set that return errors instead of panicking,
//     and an optional finite-value guard.
//   - MatVec, Dot and QuadraticForm (xᵀ·A·x), the kernel behind
//     double-sum mixing rules.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal,
//     ValidateVecLen) returning plain sentinels for uniform wrapping.
//
// Matrices here are tiny (one row per mixture component), so every kernel
// favours fixed, deterministic loop orders over blocking or parallelism.
package matrix
