// Package z97 implements arithmetic on integers modulo 97.
//
// The package exposes a single value type, Residue, representing an element
// of Z/97Z. Residues are immutable: every operation returns a new value, and
// every result is reduced into the range [0, 96]. The constructor applies a
// true mathematical modulo, so negative inputs reduce to non-negative
// residues:
//
//	z97.New(-1).Value() // 96
//
// Because 97 is prime, every non-zero residue has a multiplicative inverse.
// Inverse reports ErrNoInverse for the zero residue instead of returning a
// meaningless value, so the type stays safe to reuse outside the cipher's
// key-validated paths.
package z97
