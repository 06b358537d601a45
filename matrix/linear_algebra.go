// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opMatVec    = "MatVec"
	opDot       = "Dot"
	opQuadratic = "QuadraticForm"
)

// matrixErrorf tags an error with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Dot returns Σ x_i·y_i.
//
// Errors: ErrNilMatrix (nil vector), ErrDimensionMismatch (length differs).
func Dot(x, y []float64) (float64, error) {
	if err := ValidateVecLen(y, len(x)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s, nil
}

// QuadraticForm returns xᵀ·A·x = Σ_i Σ_j x_i·x_j·A[i,j], the double sum of a
// pairwise mixing rule.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square or len(x) ≠ n).
// Complexity: O(n²).
func QuadraticForm(a Matrix, x []float64) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opQuadratic, err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opQuadratic, err)
	}

	return Dot(x, ax)
}
