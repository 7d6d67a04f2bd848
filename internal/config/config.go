// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"runtime"
	"time"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/password"
)

// StructuredConfig is the top-level configuration container for
// go-pass-crypt. It aggregates all sub-configurations and is populated by
// merging values from a JSON file, environment variables, and command-line
// flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds key-derivation parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Generator holds password generator limits.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Workers holds settings of the batch worker pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: PASSCRYPT_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds key-derivation parameters.
type Crypto struct {
	// KDFIterations is the PBKDF2 iteration count. Envelopes must be
	// opened with the same count they were sealed with, so changing it
	// makes previously stored envelopes fail with a decryption error.
	// Env: PASSCRYPT_CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Generator holds password generator limits.
type Generator struct {
	// DefaultLength is used when a request does not name a length.
	// Env: PASSCRYPT_GENERATOR_DEFAULT_LENGTH
	DefaultLength int `env:"DEFAULT_LENGTH"`

	// MaxLength is the largest length a single request may ask for.
	// Env: PASSCRYPT_GENERATOR_MAX_LENGTH
	MaxLength int `env:"MAX_LENGTH"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: PASSCRYPT_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Console switches from JSON to human-readable output.
	// Env: PASSCRYPT_LOG_CONSOLE
	Console bool `env:"CONSOLE"`
}

// Workers holds settings of the batch worker pool.
type Workers struct {
	// Concurrency is the maximum number of key derivations running at
	// once.
	// Env: PASSCRYPT_WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// BatchTimeout bounds a whole batch; zero means no limit.
	// Env: PASSCRYPT_WORKERS_BATCH_TIMEOUT
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT"`
}

// Defaults returns the values used for fields no source sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Crypto: Crypto{
			KDFIterations: crypto.DefaultKDFIterations,
		},
		Generator: Generator{
			DefaultLength: password.DefaultLength,
			MaxLength:     password.DefaultMaxLength,
		},
		Log: Log{
			Level: "info",
		},
		Workers: Workers{
			Concurrency: runtime.NumCPU(),
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration.
// flagCfg is the value returned by [BindFlags] after the flag set has been
// parsed; nil means no flags.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
