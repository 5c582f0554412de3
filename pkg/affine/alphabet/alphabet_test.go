package alphabet

import (
	"errors"
	"testing"

	"github.com/mathnerd/affine97/pkg/affine/z97"
)

func TestTableSize(t *testing.T) {
	if len(Table()) != Size {
		t.Fatalf("Table() length = %d, want %d", len(Table()), Size)
	}
	if Size != z97.Modulus {
		t.Fatalf("Size = %d, want %d", Size, z97.Modulus)
	}
}

func TestTableDistinct(t *testing.T) {
	seen := make(map[byte]int)
	for i := 0; i < Size; i++ {
		c := Table()[i]
		if prev, ok := seen[c]; ok {
			t.Errorf("character %q appears at both %d and %d", c, prev, i)
		}
		seen[c] = i
	}
}

func TestKnownPositions(t *testing.T) {
	tests := []struct {
		c       byte
		residue int64
	}{
		{'A', 0},
		{'I', 8},
		{'Z', 25},
		{'a', 26},
		{'z', 51},
		{'0', 52},
		{'9', 61},
		{' ', 62},
		{'~', 63},
		{'+', 77},
		{'[', 78},
		{'|', 94},
		{'\t', 95},
		{'\n', 96},
	}

	for _, tt := range tests {
		r, err := ToResidue(tt.c)
		if err != nil {
			t.Fatalf("ToResidue(%q) failed: %v", tt.c, err)
		}
		if r.Value() != tt.residue {
			t.Errorf("ToResidue(%q) = %d, want %d", tt.c, r.Value(), tt.residue)
		}
	}
}

func TestRoundTripCharacterFirst(t *testing.T) {
	for i := 0; i < Size; i++ {
		c := Table()[i]
		r, err := ToResidue(c)
		if err != nil {
			t.Fatalf("ToResidue(%q) failed: %v", c, err)
		}
		if got := ToChar(r); got != c {
			t.Errorf("ToChar(ToResidue(%q)) = %q", c, got)
		}
	}
}

func TestRoundTripResidueFirst(t *testing.T) {
	for i := int64(0); i < Size; i++ {
		r := z97.New(i)
		back, err := ToResidue(ToChar(r))
		if err != nil {
			t.Fatalf("ToResidue(ToChar(%d)) failed: %v", i, err)
		}
		if !back.Equal(r) {
			t.Errorf("ToResidue(ToChar(%d)) = %d", i, back.Value())
		}
	}
}

func TestUnsupported(t *testing.T) {
	for _, c := range []byte{0x00, '\r', 0x7F, 0x80, 0xC3, 0xFF} {
		if Supported(c) {
			t.Errorf("Supported(%#x) = true, want false", c)
		}
		_, err := ToResidue(c)
		if !errors.Is(err, ErrUnsupportedChar) {
			t.Errorf("ToResidue(%#x) error = %v, want ErrUnsupportedChar", c, err)
		}
	}
}

func TestSupported(t *testing.T) {
	for i := 0; i < Size; i++ {
		if !Supported(Table()[i]) {
			t.Errorf("Supported(%q) = false, want true", Table()[i])
		}
	}
}
