package models

// PasswordRequest describes a password the caller wants generated.
type PasswordRequest struct {
	// Length is the number of characters to produce.
	Length int `json:"length"`

	// IncludeSymbols adds the fixed symbol set to the alphabet.
	IncludeSymbols bool `json:"include_symbols"`

	// RequireEachClass guarantees at least one character from every
	// active class (upper, lower, digit and, if enabled, symbol).
	RequireEachClass bool `json:"require_each_class"`
}
