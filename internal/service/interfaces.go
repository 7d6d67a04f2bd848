package service

import "github.com/MKhiriev/go-pass-crypt/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialService seals plaintext credentials into envelope strings and
// opens them again with the master passphrase. Implementations hold no
// per-call state and are safe for concurrent use.
type CredentialService interface {
	// EncryptCredential draws a fresh salt and IV, derives a key from
	// passphrase, encrypts plaintext, and returns the serialized envelope
	// "base64(salt):base64(iv):base64(ciphertext)".
	// Returns ErrInvalidInput for an empty passphrase.
	EncryptCredential(plaintext, passphrase string) (string, error)

	// DecryptCredential reverses EncryptCredential. Returns ErrParse for a
	// malformed envelope and ErrDecryption for a wrong passphrase or
	// corrupted data. The envelope is never modified.
	DecryptCredential(envelope, passphrase string) (string, error)
}

// PasswordService generates random passwords and rates candidates.
type PasswordService interface {
	// Generate returns a password of length characters drawn uniformly
	// from letters, digits and, if includeSymbols, symbols.
	Generate(length int, includeSymbols bool) (string, error)

	// GenerateDefault uses the configured default length with symbols.
	GenerateDefault() (string, error)

	// GenerateWithOptions additionally supports RequireEachClass.
	GenerateWithOptions(req models.PasswordRequest) (string, error)

	// Score rates password; the second result is false for "".
	Score(password string) (models.Strength, bool)

	// Analyze returns a weighted breakdown with improvement suggestions.
	Analyze(password string) models.Analysis
}
