package crypto

import "fmt"

// The base alphabet already leaves out the letters in ambiguousChars.
const (
	baseChars        = "abcdefghjkmnpqrtuvwxyzACDEFGHIJKMNPQRTUVWXYZ"
	digitChars       = "2345679"
	symbolChars      = "!@#$%^&*()+[]{}<>?"
	ambiguousChars   = "ilLoOSsB"
	ambiguousSymbols = "-_.,|"
	ambiguousDigits  = "0158"
)

// PasswordGenerator produces random passwords from a character pool built
// from PasswordOptions.
type PasswordGenerator struct {
	opts PasswordOptions
	src  *Source
}

// NewPasswordGenerator validates opts and returns a generator backed by
// crypto/rand.
func NewPasswordGenerator(opts *PasswordOptions) (*PasswordGenerator, error) {
	if opts == nil {
		return nil, ErrMissingOptions
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &PasswordGenerator{opts: *opts, src: DefaultSource()}, nil
}

// Generate returns quantity independently generated passwords.
func (g *PasswordGenerator) Generate(quantity int) ([]string, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}

	pool := buildPool(g.opts)
	results := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		password, err := g.create(pool)
		if err != nil {
			return nil, err
		}
		results = append(results, password)
	}
	return results, nil
}

func (g *PasswordGenerator) create(pool string) (string, error) {
	result := make([]byte, g.opts.Length)
	for i := range result {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a random character from charset.
func (g *PasswordGenerator) randChar(charset string) (byte, error) {
	n, err := g.src.Intn(len(charset))
	if err != nil {
		return 0, fmt.Errorf("drawing password character: %w", err)
	}
	return charset[n], nil
}

// buildPool concatenates the enabled character sets. The order is fixed so
// that the pool for a given set of options is always identical.
func buildPool(opts PasswordOptions) string {
	pool := baseChars

	if opts.IncludeSymbols {
		pool += symbolChars
	}
	if opts.IncludeDigits {
		pool += digitChars
	}
	if opts.IncludeAmbiguousChars {
		pool += ambiguousChars
	}
	if opts.IncludeSymbols && opts.IncludeAmbiguousChars {
		pool += ambiguousSymbols
	}
	if opts.IncludeDigits && opts.IncludeAmbiguousChars {
		pool += ambiguousDigits
	}

	return pool
}
