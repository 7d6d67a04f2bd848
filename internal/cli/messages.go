// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/password"
	"github.com/MKhiriev/go-pass-crypt/internal/validators"
)

const (
	// MsgMalformedEnvelope means the input is not salt:iv:ciphertext.
	MsgMalformedEnvelope = "not a valid envelope"

	// MsgCannotDecrypt covers both a wrong passphrase and a corrupted
	// envelope; the two cannot be told apart.
	MsgCannotDecrypt = "cannot decrypt: wrong passphrase or corrupted data"

	// MsgEmptyPassphrase is shown when the master passphrase is blank.
	MsgEmptyPassphrase = "master passphrase must not be empty"

	// MsgInvalidLength is shown for a password length out of range.
	MsgInvalidLength = "password length is out of range"

	// MsgInvalidInput is shown for any other rejected argument.
	MsgInvalidInput = "invalid input"

	// MsgPassphraseMismatch is shown when the confirmation differs.
	MsgPassphraseMismatch = "passphrases do not match"

	// MsgNoInput is shown when standard input ends early.
	MsgNoInput = "unexpected end of input"

	// MsgGenerationFailed is shown when class requirements could not be met.
	MsgGenerationFailed = "could not generate a password with every character class"
)

var userMessages = []struct {
	target error
	msg    string
}{
	{crypto.ErrParse, MsgMalformedEnvelope},
	{crypto.ErrDecryption, MsgCannotDecrypt},
	{validators.ErrEmptyPassphrase, MsgEmptyPassphrase},
	{validators.ErrInvalidLength, MsgInvalidLength},
	{crypto.ErrInvalidInput, MsgInvalidInput},
	{ErrPassphraseMismatch, MsgPassphraseMismatch},
	{ErrNoInput, MsgNoInput},
	{password.ErrClassRequirementUnmet, MsgGenerationFailed},
}

// UserMessage returns the message shown to the user for err. Errors of no
// known kind, configuration errors among them, are shown as is.
func UserMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return err.Error()
}
