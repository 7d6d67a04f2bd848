// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

// aesCBC is the AES-256-CBC / PKCS#7 implementation of [BlockCipher].
// It carries no MAC, so it offers confidentiality but not integrity.
type aesCBC struct{}

// NewAESCBC constructs the AES-256-CBC [BlockCipher].
func NewAESCBC() BlockCipher {
	return &aesCBC{}
}

// Encrypt implements [BlockCipher]. The key must be [KeySize] bytes and the
// IV [IVSize] bytes. The returned ciphertext is always a non-empty multiple
// of the AES block size, even for empty plaintext.
func (c *aesCBC) Encrypt(plaintext, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	// padded holds a copy of the plaintext.
	Zero(padded)
	return ciphertext, nil
}

// Decrypt implements [BlockCipher]. ciphertext is never modified. Returns
// [ErrDecryption] when ciphertext is empty, not block-aligned, or decrypts
// to invalid padding.
func (c *aesCBC) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a positive multiple of %d: %w",
			len(ciphertext), aes.BlockSize, ErrDecryption)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		Zero(plaintext)
		return nil, err
	}

	return unpadded, nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key size: expected %d bytes, got %d: %w", KeySize, len(key), ErrInvalidInput)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("invalid iv size: expected %d bytes, got %d: %w", IVSize, len(iv), ErrInvalidInput)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return block, nil
}

// pkcs7Pad returns a new slice holding data followed by 1..blockSize bytes
// each equal to the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize

	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}

	return out
}

// pkcs7Unpad strips and validates PKCS#7 padding. The returned slice
// aliases data.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d: %w", len(data), ErrDecryption)
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding: %w", ErrDecryption)
	}

	good := 1
	for _, b := range data[len(data)-padLen:] {
		good &= subtle.ConstantTimeByteEq(b, byte(padLen))
	}
	if good != 1 {
		return nil, fmt.Errorf("invalid padding: %w", ErrDecryption)
	}

	return data[:len(data)-padLen], nil
}
