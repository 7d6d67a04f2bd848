// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// envelopeSeparator joins the envelope fields. It is outside the standard
// base64 alphabet, so it can never appear inside a field.
const envelopeSeparator = ":"

// envelopeFields is the number of fields in a serialized envelope.
const envelopeFields = 3

// Envelope is the persisted unit: everything needed to decrypt a credential
// given the right passphrase. Its serialized form is
//
//	base64(salt):base64(iv):base64(ciphertext)
//
// using standard padded base64. The format is stable; changing it requires
// migrating stored data.
type Envelope struct {
	Salt       []byte
	IV         []byte
	Ciphertext []byte
}

// String serializes the envelope.
func (e Envelope) String() string {
	enc := base64.StdEncoding
	return strings.Join([]string{
		enc.EncodeToString(e.Salt),
		enc.EncodeToString(e.IV),
		enc.EncodeToString(e.Ciphertext),
	}, envelopeSeparator)
}

// ParseEnvelope is the inverse of [Envelope.String]. It returns an error
// wrapping [ErrParse] when the field count is wrong, a field is not valid
// base64, the salt or IV is not 16 bytes, or the ciphertext is empty.
func ParseEnvelope(s string) (Envelope, error) {
	parts := strings.Split(s, envelopeSeparator)
	if len(parts) != envelopeFields {
		return Envelope{}, fmt.Errorf("expected %d fields, got %d: %w", envelopeFields, len(parts), ErrParse)
	}

	salt, err := decodeField("salt", parts[0])
	if err != nil {
		return Envelope{}, err
	}
	iv, err := decodeField("iv", parts[1])
	if err != nil {
		return Envelope{}, err
	}
	ciphertext, err := decodeField("ciphertext", parts[2])
	if err != nil {
		return Envelope{}, err
	}

	if len(salt) != SaltSize {
		return Envelope{}, fmt.Errorf("salt is %d bytes, want %d: %w", len(salt), SaltSize, ErrParse)
	}
	if len(iv) != IVSize {
		return Envelope{}, fmt.Errorf("iv is %d bytes, want %d: %w", len(iv), IVSize, ErrParse)
	}
	if len(ciphertext) == 0 {
		return Envelope{}, fmt.Errorf("empty ciphertext: %w", ErrParse)
	}

	return Envelope{Salt: salt, IV: iv, Ciphertext: ciphertext}, nil
}

func decodeField(name, value string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", name, ErrParse, err)
	}
	return b, nil
}
