package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates an iteration count below
	// crypto.DefaultKDFIterations.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidGeneratorConfigs indicates a default length outside
	// 1..max length.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive concurrency or a
	// negative batch timeout.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
