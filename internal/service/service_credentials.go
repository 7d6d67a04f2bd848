// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/validators"
	"github.com/MKhiriev/go-pass-crypt/models"
)

type credentialService struct {
	provider  crypto.Provider
	validator validators.Validator
	logger    *logger.Logger
}

// NewCredentialService constructs a [CredentialService] on top of provider.
func NewCredentialService(provider crypto.Provider, validator validators.Validator, log *logger.Logger) CredentialService {
	return &credentialService{
		provider:  provider,
		validator: validator,
		logger:    log,
	}
}

func (s *credentialService) EncryptCredential(plaintext, passphrase string) (string, error) {
	if err := s.validator.Validate(context.Background(), models.SealRequest{Plaintext: plaintext, Passphrase: passphrase}); err != nil {
		s.logger.Warn().Err(err).Msg("encrypt credential: invalid request")
		return "", err
	}

	// 1. Fresh salt and IV for every envelope
	salt, err := s.randomBytes(crypto.SaltSize)
	if err != nil {
		return "", s.fail("encrypt credential", fmt.Errorf("generate salt: %w", err))
	}
	iv, err := s.randomBytes(crypto.IVSize)
	if err != nil {
		return "", s.fail("encrypt credential", fmt.Errorf("generate iv: %w", err))
	}

	// 2. Derive the key
	key, err := s.provider.KDF.Derive(passphrase, salt)
	if err != nil {
		return "", s.fail("encrypt credential", fmt.Errorf("derive key: %w", err))
	}
	defer crypto.Zero(key)

	// 3. Encrypt
	plain := []byte(plaintext)
	defer crypto.Zero(plain)

	ciphertext, err := s.provider.Cipher.Encrypt(plain, key, iv)
	if err != nil {
		return "", s.fail("encrypt credential", fmt.Errorf("encrypt: %w", err))
	}

	// 4. Serialize
	envelope := crypto.Envelope{Salt: salt, IV: iv, Ciphertext: ciphertext}.String()

	s.logger.Debug().Int("ciphertext_len", len(ciphertext)).Msg("credential encrypted")
	return envelope, nil
}

func (s *credentialService) DecryptCredential(envelope, passphrase string) (string, error) {
	if err := s.validator.Validate(context.Background(), models.OpenRequest{Envelope: envelope, Passphrase: passphrase}); err != nil {
		s.logger.Warn().Err(err).Msg("decrypt credential: invalid request")
		return "", err
	}

	// 1. Parse
	env, err := crypto.ParseEnvelope(envelope)
	if err != nil {
		return "", s.fail("decrypt credential", err)
	}

	// 2. Re-derive the key from the stored salt
	key, err := s.provider.KDF.Derive(passphrase, env.Salt)
	if err != nil {
		return "", s.fail("decrypt credential", fmt.Errorf("derive key: %w", err))
	}
	defer crypto.Zero(key)

	// 3. Decrypt
	plain, err := s.provider.Cipher.Decrypt(env.Ciphertext, key, env.IV)
	if err != nil {
		return "", s.fail("decrypt credential", err)
	}
	defer crypto.Zero(plain)

	// Valid padding under a wrong key is possible; garbage that is not
	// UTF-8 is still reported as a decryption failure.
	if !utf8.Valid(plain) {
		return "", s.fail("decrypt credential", fmt.Errorf("plaintext is not valid utf-8: %w", ErrDecryption))
	}

	s.logger.Debug().Msg("credential decrypted")
	return string(plain), nil
}

// randomBytes reads n bytes and refuses short results from a faulty
// source, so a salt or IV is never silently truncated.
func (s *credentialService) randomBytes(n int) ([]byte, error) {
	b, err := s.provider.RNG.Bytes(n)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("random source returned %d bytes, want %d", len(b), n)
	}
	return b, nil
}

func (s *credentialService) fail(op string, err error) error {
	s.logger.Warn().Err(err).Msg(op)
	return fmt.Errorf("%s: %w", op, err)
}
