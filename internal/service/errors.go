package service

import "github.com/MKhiriev/go-pass-crypt/internal/crypto"

// The three failure kinds reported by the services. They are the crypto
// package's sentinels, re-exported so callers need only this package.
var (
	ErrParse        = crypto.ErrParse
	ErrDecryption   = crypto.ErrDecryption
	ErrInvalidInput = crypto.ErrInvalidInput
)
