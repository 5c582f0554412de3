// Package alphabet defines the fixed 97-character table of the cipher and
// the bijection between characters and residues modulo 97.
//
// The table order is normative: position i corresponds to residue i, and
// independently built implementations must reproduce it exactly to
// interoperate. 'A' is residue 0; tab and newline close the table at
// residues 95 and 96.
package alphabet

import (
	"errors"

	"github.com/mathnerd/affine97/pkg/affine/z97"
)

// Size is the number of characters in the table, equal to z97.Modulus.
const Size = 97

// ErrUnsupportedChar indicates a character outside the 97-symbol table.
var ErrUnsupportedChar = errors.New("alphabet: unsupported character")

// table lists the 97 supported characters in residue order: uppercase,
// lowercase, digits, space, punctuation, tab, newline.
const table = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" ~-=!@#$%^&*()_+" +
	"[];',./{}:\"<>?`\\|" +
	"\t\n"

// index maps an ASCII byte to its residue, or -1 when unsupported.
var index [128]int8

func init() {
	if len(table) != Size {
		panic("alphabet: table must hold exactly 97 characters")
	}
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < Size; i++ {
		index[table[i]] = int8(i)
	}
}

// ToResidue returns the residue assigned to c, or ErrUnsupportedChar when c
// is not one of the 97 table characters.
func ToResidue(c byte) (z97.Residue, error) {
	if c >= 128 || index[c] < 0 {
		return z97.Residue{}, ErrUnsupportedChar
	}
	return z97.New(int64(index[c])), nil
}

// ToChar returns the character assigned to r. It is total: every residue in
// [0, 96] has a table entry.
func ToChar(r z97.Residue) byte {
	return table[r.Value()]
}

// Supported reports whether c is in the table. Callers can use it to
// validate input before encrypting.
func Supported(c byte) bool {
	return c < 128 && index[c] >= 0
}

// Table returns the full character table in residue order.
func Table() string {
	return table
}
