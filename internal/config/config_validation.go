// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.KDFIterations < crypto.DefaultKDFIterations {
		return fmt.Errorf("kdf iterations %d below %d: %w",
			cfg.Crypto.KDFIterations, crypto.DefaultKDFIterations, ErrInvalidCryptoConfigs)
	}

	if cfg.Generator.MaxLength < 1 ||
		cfg.Generator.DefaultLength < 1 ||
		cfg.Generator.DefaultLength > cfg.Generator.MaxLength {
		return ErrInvalidGeneratorConfigs
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Workers.Concurrency < 1 || cfg.Workers.BatchTimeout < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
