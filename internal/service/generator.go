package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/cyfrinair/cyfrinair-go/internal/crypto"
	"github.com/cyfrinair/cyfrinair-go/internal/metrics"
	"github.com/cyfrinair/cyfrinair-go/internal/model"
	"github.com/cyfrinair/cyfrinair-go/internal/wordlist"
)

// DefaultQuantity is the number of secrets returned when none is requested.
const DefaultQuantity = 1

// Upper bounds on a single secret. Together with crypto.MaxQuantity they
// cap the work one request can ask for.
const (
	MaxLength = 256
	MaxWords  = 32
)

var (
	ErrLengthTooLong = fmt.Errorf("%w: length must be at most %d", crypto.ErrInvalidOptions, MaxLength)
	ErrTooManyWords  = fmt.Errorf("%w: words must be at most %d", crypto.ErrInvalidOptions, MaxWords)
)

// GeneratorService handles password and passphrase generation business logic.
type GeneratorService struct {
	words   *wordlist.List
	metrics *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService drawing passphrase
// words from words. m may be nil.
func NewGeneratorService(words *wordlist.List, m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{words: words, metrics: m}
}

// Passwords produces the passwords described by req.
func (s *GeneratorService) Passwords(req model.PasswordRequest) ([]string, error) {
	quantity, err := quantityOrDefault(req.Quantity)
	if err != nil {
		return nil, err
	}

	defaults := crypto.DefaultPasswordOptions()
	opts := crypto.PasswordOptions{
		Length:                intOrDefault(req.Length, defaults.Length),
		IncludeDigits:         boolOrDefault(req.Digits, defaults.IncludeDigits),
		IncludeSymbols:        boolOrDefault(req.Symbols, defaults.IncludeSymbols),
		IncludeAmbiguousChars: boolOrDefault(req.Ambiguous, defaults.IncludeAmbiguousChars),
	}

	if opts.Length > MaxLength {
		return nil, ErrLengthTooLong
	}

	gen, err := crypto.NewPasswordGenerator(&opts)
	if err != nil {
		return nil, err
	}
	passwords, err := gen.Generate(quantity)
	if err != nil {
		return nil, err
	}

	s.metrics.SecretsGenerated("password", len(passwords))
	return passwords, nil
}

// Passphrases produces the passphrases described by req.
func (s *GeneratorService) Passphrases(req model.PassphraseRequest) ([]string, error) {
	quantity, err := quantityOrDefault(req.Quantity)
	if err != nil {
		return nil, err
	}

	opts := crypto.DefaultPassphraseOptions()
	opts.Words = intOrDefault(req.Words, opts.Words)
	if opts.Words > MaxWords {
		return nil, ErrTooManyWords
	}
	if req.Separator != nil {
		if utf8.RuneCountInString(*req.Separator) != 1 {
			return nil, crypto.ErrInvalidSeparator
		}
		opts.Separator, _ = utf8.DecodeRuneInString(*req.Separator)
	}
	if req.Casing != nil {
		if opts.Casing, err = crypto.ParseCasing(*req.Casing); err != nil {
			return nil, err
		}
	}
	if req.Digit != nil {
		if opts.DigitPlacement, err = crypto.ParseDigitPlacement(*req.Digit); err != nil {
			return nil, err
		}
	}

	gen, err := crypto.NewPassphraseGenerator(&opts, s.words)
	if err != nil {
		return nil, err
	}
	phrases, err := gen.Generate(quantity)
	if err != nil {
		return nil, err
	}

	s.metrics.SecretsGenerated("passphrase", len(phrases))
	return phrases, nil
}

// quantityOrDefault applies DefaultQuantity and checks the quantity bounds
// before any options are looked at.
func quantityOrDefault(p *int) (int, error) {
	quantity := intOrDefault(p, DefaultQuantity)
	if quantity < 1 || quantity > crypto.MaxQuantity {
		return 0, crypto.ErrInvalidQuantity
	}
	return quantity, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
