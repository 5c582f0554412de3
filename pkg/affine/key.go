package affine

import (
	"context"
	"crypto/rand"
	"io"

	"github.com/mathnerd/affine97/pkg/affine/logging"
	"github.com/mathnerd/affine97/pkg/affine/z97"
)

// Key holds the two parts of an affine transform: M is the multiplicative
// part (slope) and B the additive part (intercept). Keys are plain values;
// nothing prevents constructing one with M = 0, but Encrypt and Decrypt
// reject it before processing any input.
type Key struct {
	M z97.Residue
	B z97.Residue
}

// NewKey builds a Key from arbitrary integers, reducing both parts modulo 97.
func NewKey(m, b int64) Key {
	return Key{M: z97.New(m), B: z97.New(b)}
}

// Valid reports whether the key's transform is invertible, which is when the
// multiplicative part is non-zero.
func (k Key) Valid() bool {
	return !k.M.IsZero()
}

// Option configures key generation.
type Option func(*options)

type options struct {
	logger logging.Logger
}

// WithLogger emits a debug event when a key is generated. Key material is
// never written to the log.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// GenerateKey draws a uniformly random valid key from the given randomness
// source. M is drawn from [1, 96] so the result is valid by construction;
// B is drawn from [0, 96]. The source is an injected collaborator: callers
// who need determinism in tests pass their own reader.
func GenerateKey(random io.Reader, opts ...Option) (Key, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m, err := uniform(random, z97.Modulus-1)
	if err != nil {
		return Key{}, opError("GenerateKey", err)
	}
	b, err := uniform(random, z97.Modulus)
	if err != nil {
		return Key{}, opError("GenerateKey", err)
	}

	if o.logger != nil {
		o.logger.Debug(context.Background(), "generated affine key", logging.Redacted("key"))
	}
	return Key{M: z97.New(m + 1), B: z97.New(b)}, nil
}

// MakeKey generates a random valid key from crypto/rand.
func MakeKey() (Key, error) {
	return GenerateKey(rand.Reader)
}

// uniform returns an unbiased draw from [0, n) by rejection sampling single
// bytes from random. n must be in (0, 256).
func uniform(random io.Reader, n int64) (int64, error) {
	// Bytes at or above limit would bias the draw toward low values.
	limit := 256 - 256%int(n)

	var buf [1]byte
	for {
		if _, err := io.ReadFull(random, buf[:]); err != nil {
			return 0, err
		}
		if int(buf[0]) < limit {
			return int64(buf[0]) % n, nil
		}
	}
}
