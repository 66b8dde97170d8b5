// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for input validation.
//   - Keep constructors minimal by delegating shape/diagonal/symmetry checks here.
//   - Return sentinel errors tagged with the validator name and, where a cell
//     is at fault, its coordinates.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - ValidateRows follows a fixed sequence: Square → ZeroDiagonal → Symmetric.
//     The first violation wins, so error priority is stable.

package matrix

// ValidateNotNil ensures the adjacency reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Adjacency) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquareRows checks that every row has exactly len(rows) entries.
// A zero-length input is square (the empty graph).
// Complexity: O(n).
func ValidateSquareRows(rows [][]bool) error {
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return cellErrorf("ValidateSquareRows", i, len(row), ErrNonSquare)
		}
	}

	return nil
}

// ValidateZeroDiagonalRows rejects any set diagonal entry.
// Assumes rows is square (caller must ensure).
// Complexity: O(n).
func ValidateZeroDiagonalRows(rows [][]bool) error {
	for i := range rows {
		if rows[i][i] {
			return cellErrorf("ValidateZeroDiagonalRows", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetricRows checks rows[i][j] == rows[j][i] for all i < j.
// Assumes rows is square (caller must ensure).
// Complexity: O(n²/2).
func ValidateSymmetricRows(rows [][]bool) error {
	n := len(rows)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return cellErrorf("ValidateSymmetricRows", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateRows is the composite boundary check used by FromRows.
// Errors: ErrNonSquare, ErrNonZeroDiagonal, ErrAsymmetry (in that priority).
func ValidateRows(rows [][]bool) error {
	if err := ValidateSquareRows(rows); err != nil {
		return err
	}
	if err := ValidateZeroDiagonalRows(rows); err != nil {
		return err
	}

	return ValidateSymmetricRows(rows)
}

// ValidatePermutation ensures perm is a bijection on [0, n).
// Errors: ErrBadPermutation for wrong length, out-of-range or repeated targets.
// Complexity: O(n) time, O(n) scratch.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return matrixErrorf("ValidatePermutation: length", ErrBadPermutation)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return cellErrorf("ValidatePermutation", i, p, ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}
