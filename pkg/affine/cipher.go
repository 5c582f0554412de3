package affine

import (
	"strings"

	"github.com/mathnerd/affine97/pkg/affine/alphabet"
)

// Encrypt applies y = m*x + b (mod 97) to each character of plaintext and
// returns the ciphertext. It fails with ErrInvalidKey before touching the
// input when the key is invalid, and with alphabet.ErrUnsupportedChar at the
// first character outside the 97-symbol table. On failure no partial output
// is returned. Output length always equals input length.
func Encrypt(key Key, plaintext string) (string, error) {
	if !key.Valid() {
		return "", opError("Encrypt", ErrInvalidKey)
	}

	var ct strings.Builder
	ct.Grow(len(plaintext))

	for i := 0; i < len(plaintext); i++ {
		x, err := alphabet.ToResidue(plaintext[i])
		if err != nil {
			return "", opError("Encrypt", err)
		}
		// y = mx + b
		ct.WriteByte(alphabet.ToChar(key.M.Mul(x).Add(key.B)))
	}
	return ct.String(), nil
}

// Decrypt inverts the transform: x = (1/m) * (y - b) mod 97. It fails under
// the same conditions as Encrypt. The modular inverse of m is precomputed
// once; key validation guarantees it exists.
func Decrypt(key Key, ciphertext string) (string, error) {
	if !key.Valid() {
		return "", opError("Decrypt", ErrInvalidKey)
	}

	mInv, err := key.M.Inverse()
	if err != nil {
		// Unreachable after Valid, kept so a direct misuse still surfaces.
		return "", opError("Decrypt", err)
	}
	negB := key.B.Neg()

	var pt strings.Builder
	pt.Grow(len(ciphertext))

	for i := 0; i < len(ciphertext); i++ {
		y, err := alphabet.ToResidue(ciphertext[i])
		if err != nil {
			return "", opError("Decrypt", err)
		}
		// x = (y - b) / m
		pt.WriteByte(alphabet.ToChar(mInv.Mul(y.Add(negB))))
	}
	return pt.String(), nil
}
