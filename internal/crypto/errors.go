package crypto

import (
	"errors"
	"fmt"
)

// MaxQuantity caps how many secrets a single Generate call may produce.
const MaxQuantity = 65535

var (
	ErrMissingOptions  = errors.New("options are required")
	ErrInvalidOptions  = errors.New("invalid options")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 65535")
	ErrEmptyWordList   = errors.New("word list is empty")

	ErrInvalidLength         = fmt.Errorf("%w: length must be at least 1", ErrInvalidOptions)
	ErrInvalidWordCount      = fmt.Errorf("%w: words must be at least 1", ErrInvalidOptions)
	ErrInvalidSeparator      = fmt.Errorf("%w: separator must be a single printable ASCII character", ErrInvalidOptions)
	ErrInvalidCasing         = fmt.Errorf("%w: casing must be one of upper, lower, random", ErrInvalidOptions)
	ErrInvalidDigitPlacement = fmt.Errorf("%w: digit must be one of once, none, every", ErrInvalidOptions)
)

func checkQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	return nil
}
