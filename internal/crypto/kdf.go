// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultKDFIterations is the PBKDF2 iteration count used for envelopes
// unless configured otherwise. Raising it makes every derive slower,
// including the ones for already stored envelopes.
const DefaultKDFIterations = 10000

// pbkdf2Deriver is the PBKDF2-HMAC-SHA-256 implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	iterations int
	keyLen     int
}

// NewPBKDF2Deriver constructs a [KeyDeriver] producing 256-bit keys with
// PBKDF2-HMAC-SHA-256. A non-positive iterations value selects
// [DefaultKDFIterations].
func NewPBKDF2Deriver(iterations int) KeyDeriver {
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}

	return &pbkdf2Deriver{
		iterations: iterations,
		keyLen:     KeySize,
	}
}

// Derive implements [KeyDeriver].
func (d *pbkdf2Deriver) Derive(passphrase string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("derive key: empty salt: %w", ErrInvalidInput)
	}

	return pbkdf2.Key([]byte(passphrase), salt, d.iterations, d.keyLen, sha256.New), nil
}
