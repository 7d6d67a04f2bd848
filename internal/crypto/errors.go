// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Error kinds returned by the crypto primitives. Callers match them with
// [errors.Is]; concrete failures are wrapped with additional context.
var (
	// ErrParse indicates a malformed or truncated envelope string: wrong
	// field count, undecodable base64, or salt/IV of the wrong length.
	ErrParse = errors.New("malformed envelope")

	// ErrDecryption indicates that the ciphertext could not be turned back
	// into plaintext. It almost always means a wrong passphrase or
	// corrupted stored data.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidInput indicates an argument outside of its allowed range,
	// e.g. an empty salt or a key of the wrong size.
	ErrInvalidInput = errors.New("invalid input")
)
