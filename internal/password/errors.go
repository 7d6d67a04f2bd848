package password

import (
	"errors"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
)

var (
	// ErrInvalidInput is returned for out-of-range generation requests. It
	// is the same value as [crypto.ErrInvalidInput].
	ErrInvalidInput = crypto.ErrInvalidInput

	// ErrClassRequirementUnmet is returned when a password satisfying
	// RequireEachClass could not be produced within the attempt budget.
	ErrClassRequirementUnmet = errors.New("could not satisfy character class requirement")
)
