package model

// PasswordRequest represents a password generation request.
// Pointer fields distinguish a missing parameter (nil -> default) from an explicit value.
type PasswordRequest struct {
	Quantity  *int  `json:"quantity"`
	Length    *int  `json:"length"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
	Ambiguous *bool `json:"ambiguous"`
}

// PassphraseRequest represents a passphrase generation request.
type PassphraseRequest struct {
	Quantity  *int    `json:"quantity"`
	Words     *int    `json:"words"`
	Separator *string `json:"separator"`
	Casing    *string `json:"casing"`
	Digit     *string `json:"digit"`
}

// ErrorResponse is the body of every 4xx and 5xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
