// SPDX-License-Identifier: MIT

// Package numtheory implements the extended Euclidean algorithm and the
// integer helpers built on it (GCD, LCM, ModInverse).
//
// ExtendedEuclid orders its inputs so the larger one is the first dividend
// and reports the coefficients for that order:
//
//	b, _ := numtheory.ExtendedEuclid(551, 1769)
//	// b.GCD = 29, b.M = 1769, b.N = 551, b.X = 5, b.Y = -16
//	// 5*1769 + (-16)*551 == 29
//
// Use Bezout.CoefficientsFor to get them back in the caller's argument order.
package numtheory
