package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Source draws uniformly distributed integers from a cryptographically
// secure byte stream.
type Source struct {
	reader io.Reader
}

// NewSource returns a Source reading from r. A nil reader falls back to
// crypto/rand.Reader.
func NewSource(r io.Reader) *Source {
	if r == nil {
		r = rand.Reader
	}
	return &Source{reader: r}
}

// DefaultSource returns a Source backed by crypto/rand.
func DefaultSource() *Source {
	return NewSource(rand.Reader)
}

// Intn returns a uniform integer in [0, n). rand.Int rejects out-of-range
// samples instead of reducing them, so the result carries no modulo bias.
func (s *Source) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range %d", n)
	}
	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading secure random: %w", err)
	}
	return int(v.Int64()), nil
}

// Bool returns the result of a fair coin flip.
func (s *Source) Bool() (bool, error) {
	v, err := s.Intn(2)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// Digit returns a random decimal digit character.
func (s *Source) Digit() (byte, error) {
	v, err := s.Intn(10)
	if err != nil {
		return 0, err
	}
	return byte('0' + v), nil
}
