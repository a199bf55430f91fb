package crypto

import "strings"

// PasswordOptions configures the password generator.
type PasswordOptions struct {
	Length                int
	IncludeDigits         bool
	IncludeSymbols        bool
	IncludeAmbiguousChars bool
}

// DefaultPasswordOptions returns 25 characters with digits enabled and
// symbols and ambiguous characters disabled.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:        25,
		IncludeDigits: true,
	}
}

func (o PasswordOptions) validate() error {
	if o.Length < 1 {
		return ErrInvalidLength
	}
	return nil
}

// Casing selects how each passphrase word is capitalised.
type Casing int

const (
	CasingUpper Casing = iota
	CasingLower
	CasingRandom
)

func (c Casing) String() string {
	switch c {
	case CasingUpper:
		return "upper"
	case CasingLower:
		return "lower"
	case CasingRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseCasing converts upper, lower or random (any case) to a Casing.
func ParseCasing(s string) (Casing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper":
		return CasingUpper, nil
	case "lower":
		return CasingLower, nil
	case "random":
		return CasingRandom, nil
	default:
		return 0, ErrInvalidCasing
	}
}

// DigitPlacement selects where random digits are appended.
type DigitPlacement int

const (
	DigitOnce DigitPlacement = iota
	DigitNone
	DigitEveryWord
)

func (d DigitPlacement) String() string {
	switch d {
	case DigitOnce:
		return "once"
	case DigitNone:
		return "none"
	case DigitEveryWord:
		return "every"
	default:
		return "unknown"
	}
}

// ParseDigitPlacement converts once, none or every (any case) to a
// DigitPlacement. "everyword" is accepted as an alias of every.
func ParseDigitPlacement(s string) (DigitPlacement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "once":
		return DigitOnce, nil
	case "none":
		return DigitNone, nil
	case "every", "everyword":
		return DigitEveryWord, nil
	default:
		return 0, ErrInvalidDigitPlacement
	}
}

// PassphraseOptions configures the passphrase generator.
type PassphraseOptions struct {
	Words          int
	Separator      rune
	Casing         Casing
	DigitPlacement DigitPlacement
}

// DefaultPassphraseOptions returns four title-cased words joined by '-'
// with one digit appended to a random word.
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		Words:          4,
		Separator:      '-',
		Casing:         CasingUpper,
		DigitPlacement: DigitOnce,
	}
}

func (o PassphraseOptions) validate() error {
	if o.Words < 1 {
		return ErrInvalidWordCount
	}
	if o.Separator < 0x20 || o.Separator > 0x7e {
		return ErrInvalidSeparator
	}
	if o.Casing < CasingUpper || o.Casing > CasingRandom {
		return ErrInvalidCasing
	}
	if o.DigitPlacement < DigitOnce || o.DigitPlacement > DigitEveryWord {
		return ErrInvalidDigitPlacement
	}
	return nil
}
