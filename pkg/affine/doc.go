// Package affine implements the classical affine substitution cipher over a
// fixed 97-character alphabet.
//
// Each character maps to an integer residue modulo 97, the invertible
// transform y = m*x + b (mod 97) is applied, and the result maps back to a
// character. Decryption applies the inverse transform using the modular
// inverse of m, which exists for every non-zero m because 97 is prime.
//
// Example:
//
//	key, err := affine.MakeKey()
//	if err != nil {
//	    return err
//	}
//	ct, err := affine.Encrypt(key, "Hello, World!")
//	pt, err := affine.Decrypt(key, ct)
//
// The supported alphabet covers A-Z, a-z, 0-9, space, a fixed punctuation
// set, tab, and newline; see the alphabet subpackage. Encrypt and Decrypt
// fail on the first character outside that set.
//
// # Security Considerations
//
// This is an educational classical cipher. A simple substitution leaks
// letter frequencies and is trivially broken by frequency analysis. Do not
// use it where real confidentiality is required.
package affine
