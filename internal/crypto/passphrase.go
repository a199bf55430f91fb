package crypto

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cyfrinair/cyfrinair-go/internal/wordlist"
)

// PassphraseGenerator produces passphrases from words drawn out of a
// word list, decorated according to PassphraseOptions.
type PassphraseGenerator struct {
	opts  PassphraseOptions
	words *wordlist.List
	src   *Source
}

// NewPassphraseGenerator validates opts and returns a generator drawing
// from words with crypto/rand.
func NewPassphraseGenerator(opts *PassphraseOptions, words *wordlist.List) (*PassphraseGenerator, error) {
	if opts == nil {
		return nil, ErrMissingOptions
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if words == nil || words.Len() == 0 {
		return nil, ErrEmptyWordList
	}
	return &PassphraseGenerator{opts: *opts, words: words, src: DefaultSource()}, nil
}

var welsh = language.MustParse("cy")

// casers holds the case transforms for one Generate call. cases.Caser
// keeps internal state and must not be shared between goroutines.
type casers struct {
	title cases.Caser
	lower cases.Caser
}

func newCasers() casers {
	return casers{
		title: cases.Title(welsh),
		lower: cases.Lower(welsh),
	}
}

// Generate returns quantity independently generated passphrases.
func (g *PassphraseGenerator) Generate(quantity int) ([]string, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}

	c := newCasers()
	results := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		phrase, err := g.create(c)
		if err != nil {
			return nil, err
		}
		results = append(results, phrase)
	}
	return results, nil
}

func (g *PassphraseGenerator) create(c casers) (string, error) {
	candidates := make([]string, g.opts.Words)
	for i := range candidates {
		n, err := g.src.Intn(g.words.Len())
		if err != nil {
			return "", fmt.Errorf("drawing word: %w", err)
		}
		candidates[i] = g.words.At(n)
	}

	if err := g.applyCasing(candidates, c); err != nil {
		return "", err
	}
	if err := g.appendDigits(candidates); err != nil {
		return "", err
	}

	return strings.Join(candidates, string(g.opts.Separator)), nil
}

func (g *PassphraseGenerator) applyCasing(candidates []string, c casers) error {
	for i, word := range candidates {
		switch g.opts.Casing {
		case CasingUpper:
			candidates[i] = c.title.String(word)
		case CasingLower:
			candidates[i] = c.lower.String(word)
		case CasingRandom:
			heads, err := g.src.Bool()
			if err != nil {
				return fmt.Errorf("drawing casing: %w", err)
			}
			if heads {
				candidates[i] = c.title.String(word)
			} else {
				candidates[i] = c.lower.String(word)
			}
		}
	}
	return nil
}

func (g *PassphraseGenerator) appendDigits(candidates []string) error {
	switch g.opts.DigitPlacement {
	case DigitOnce:
		index, err := g.src.Intn(len(candidates))
		if err != nil {
			return fmt.Errorf("drawing digit position: %w", err)
		}
		return g.appendDigit(candidates, index)
	case DigitEveryWord:
		for i := range candidates {
			if err := g.appendDigit(candidates, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *PassphraseGenerator) appendDigit(candidates []string, index int) error {
	d, err := g.src.Digit()
	if err != nil {
		return fmt.Errorf("drawing digit: %w", err)
	}
	candidates[index] += string(d)
	return nil
}
