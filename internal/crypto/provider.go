// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// Sizes of the values handled by the default provider. SaltSize and IVSize
// are part of the persisted envelope format.
const (
	SaltSize = 16
	IVSize   = 16
	KeySize  = 32
)

// Provider bundles the primitives the credential protocol is built on.
// Swapping a field replaces a primitive without touching the protocol
// logic that consumes the provider.
type Provider struct {
	KDF    KeyDeriver
	RNG    RandomSource
	Cipher BlockCipher
}

// NewDefaultProvider returns PBKDF2-HMAC-SHA-256 with the given iteration
// count, the OS CSPRNG, and AES-256-CBC.
//
// A non-positive iterations value selects [DefaultKDFIterations].
func NewDefaultProvider(iterations int) Provider {
	return Provider{
		KDF:    NewPBKDF2Deriver(iterations),
		RNG:    NewSystemRandom(),
		Cipher: NewAESCBC(),
	}
}
