package GF

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderdetermined is returned when a linear system has fewer
	// equations than unknowns.
	ErrUnderdetermined = errors.New("underdetermined system")
	// ErrInconsistent is returned when a linear system has no solution.
	ErrInconsistent = errors.New("inconsistent system")
)

// SolveRight solves A*z = b over the field by Gaussian elimination and
// returns a solution z. A must have at least as many rows as columns. The
// field has no ordering, so pivoting picks any nonzero entry in the column
// and swaps rows. Columns without a pivot are free variables and are set
// to zero, so rank-deficient but consistent systems yield a particular
// solution; rows that contradict the solution fail with ErrInconsistent.
func SolveRight(f *Field, A [][]Element, b []Element) ([]Element, error) {
	rows := len(A)
	if rows == 0 || len(A[0]) == 0 {
		return nil, fmt.Errorf("%w: empty system", ErrDomain)
	}
	cols := len(A[0])
	if len(b) != rows {
		return nil, fmt.Errorf("%w: matrix has %d rows but vector has %d entries", ErrDomain, rows, len(b))
	}
	if rows < cols {
		return nil, fmt.Errorf("%w: %d equations for %d unknowns", ErrUnderdetermined, rows, cols)
	}

	// work on a copy, augmented with b
	m := make([][]Element, rows)
	for i, row := range A {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged matrix", ErrDomain)
		}
		m[i] = make([]Element, cols+1)
		copy(m[i], row)
		m[i][cols] = b[i]
	}

	pivotRow := 0
	pivotOf := make([]int, cols) // column -> pivot row, -1 if free
	for col := 0; col < cols; col++ {
		pivotOf[col] = -1
		pivot := -1
		for r := pivotRow; r < rows; r++ {
			if m[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue // free variable
		}
		m[pivotRow], m[pivot] = m[pivot], m[pivotRow]

		inv, err := f.Invert(m[pivotRow][col])
		if err != nil {
			return nil, err
		}
		for j := col; j <= cols; j++ {
			m[pivotRow][j] = f.Multiply(m[pivotRow][j], inv)
		}
		for r := 0; r < rows; r++ {
			if r == pivotRow || m[r][col] == 0 {
				continue
			}
			factor := m[r][col]
			for j := col; j <= cols; j++ {
				m[r][j] = f.Sub(m[r][j], f.Multiply(factor, m[pivotRow][j]))
			}
		}
		pivotOf[col] = pivotRow
		pivotRow++
	}

	// rows without a pivot were eliminated to zero coefficients and must
	// carry a zero right-hand side
	for r := pivotRow; r < rows; r++ {
		if m[r][cols] != 0 {
			return nil, fmt.Errorf("%w: equation contradicts the solution", ErrInconsistent)
		}
	}

	z := make([]Element, cols)
	for col, r := range pivotOf {
		if r >= 0 {
			z[col] = m[r][cols]
		}
	}
	return z, nil
}
