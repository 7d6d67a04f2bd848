package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// The errors below describe bad caller input and all match
	// crypto.ErrInvalidInput with errors.Is.
	ErrInvalidLength   = fmt.Errorf("password length out of range: %w", crypto.ErrInvalidInput)
	ErrTooManyClasses  = fmt.Errorf("length too short for required character classes: %w", crypto.ErrInvalidInput)
	ErrEmptyPassphrase = fmt.Errorf("master passphrase is required: %w", crypto.ErrInvalidInput)
)
