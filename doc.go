// Package linalg is a small linear-algebra and number-theory toolkit.
//
// Everything lives in three leaf packages:
//
//	matrix/    - Dense matrices: arithmetic, echelon reduction with swap
//	             tracking, determinant, minors, cofactors, adjugate, inverse
//	vector/    - []float64 arithmetic: dot and cross products, norms, angles
//	numtheory/ - extended Euclidean algorithm, GCD, LCM, modular inverse
//
// The packages are pure: inputs are never mutated, every call allocates its
// result, and failures are reported through sentinel errors matched with
// errors.Is. They are safe for concurrent use without locking.
//
// The echelon engine does not search for pivots. A zero pivot is swapped with
// the row directly below it exactly once, and determinants and inverses
// inherit that policy:
//
//	A := matrix.MustFromRows([][]float64{{0, 4, 5}, {1, 2, 3}, {6, 7, 8}})
//	det, _ := matrix.Det(A)      // 15
//	inv, _ := matrix.Inverse(A)  // Adjoint(A) / 15
//
// cmd/linalg wraps the packages in a command line tool that reads operands
// from flags or YAML/JSON files and prints text, YAML or JSON.
package linalg
