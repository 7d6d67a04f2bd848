// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// systemRandom reads from an [io.Reader] that must be a CSPRNG.
type systemRandom struct {
	reader io.Reader
}

// NewSystemRandom returns a [RandomSource] backed by [crypto/rand.Reader].
func NewSystemRandom() RandomSource {
	return &systemRandom{reader: rand.Reader}
}

// NewReaderRandom returns a [RandomSource] reading from r. It exists so
// tests can replay fixed byte streams; production code uses
// [NewSystemRandom].
func NewReaderRandom(r io.Reader) RandomSource {
	return &systemRandom{reader: r}
}

// Bytes implements [RandomSource].
func (s *systemRandom) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("random bytes: invalid count %d: %w", n, ErrInvalidInput)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(s.reader, b); err != nil {
		return nil, fmt.Errorf("random bytes: %w", err)
	}

	return b, nil
}
