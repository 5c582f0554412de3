package z97

import (
	"errors"
	"strconv"
)

// Modulus is the prime modulus of the group.
const Modulus = 97

// ErrNoInverse indicates an attempt to invert the zero residue, which has no
// multiplicative inverse.
var ErrNoInverse = errors.New("z97: zero residue has no inverse")

// Residue represents an integer modulo 97, always held in [0, 96].
// Residues are immutable - all operations return new Residues.
//
// The zero value is the zero residue and is ready to use.
type Residue struct {
	v int64
}

// New creates a Residue from an arbitrary integer, reducing it into [0, 96].
// Negative inputs reduce to non-negative residues.
func New(v int64) Residue {
	v %= Modulus
	if v < 0 {
		v += Modulus
	}
	return Residue{v: v}
}

// Value returns the canonical representative in [0, 96].
func (r Residue) Value() int64 {
	return r.v
}

// Add returns r + other mod 97.
func (r Residue) Add(other Residue) Residue {
	return Residue{v: (r.v + other.v) % Modulus}
}

// Sub returns r - other mod 97.
func (r Residue) Sub(other Residue) Residue {
	return Residue{v: (r.v - other.v + Modulus) % Modulus}
}

// Mul returns r * other mod 97.
func (r Residue) Mul(other Residue) Residue {
	return Residue{v: (r.v * other.v) % Modulus}
}

// Neg returns the additive inverse (97 - r) mod 97. Neg of zero is zero.
func (r Residue) Neg() Residue {
	return Residue{v: (Modulus - r.v) % Modulus}
}

// Inverse returns the unique residue s with r * s = 1 mod 97.
// It returns ErrNoInverse when r is the zero residue.
func (r Residue) Inverse() (Residue, error) {
	if r.v == 0 {
		return Residue{}, ErrNoInverse
	}

	// Extended Euclid on (97, r). The modulus is prime, so the gcd is 1 and
	// the final Bezout coefficient of r is its inverse.
	t, nextT := int64(0), int64(1)
	rem, nextRem := int64(Modulus), r.v
	for nextRem != 0 {
		q := rem / nextRem
		t, nextT = nextT, t-q*nextT
		rem, nextRem = nextRem, rem-q*nextRem
	}
	return New(t), nil
}

// IsZero returns true if the residue is zero.
func (r Residue) IsZero() bool {
	return r.v == 0
}

// Equal returns true if two residues represent the same class.
func (r Residue) Equal(other Residue) bool {
	return r.v == other.v
}

// String returns the decimal representation of the canonical representative.
func (r Residue) String() string {
	return strconv.FormatInt(r.v, 10)
}
