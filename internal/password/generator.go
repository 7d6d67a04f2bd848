// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/models"
)

// Character classes of the generator alphabet.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

const (
	// DefaultLength is the length used by [Generator.GenerateDefault].
	DefaultLength = 16

	// DefaultMaxLength caps a single request unless configured otherwise.
	DefaultMaxLength = 1024

	// maxClassAttempts bounds regeneration for RequireEachClass.
	maxClassAttempts = 1000
)

// Generator produces random passwords from a secure random source.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	rng       crypto.RandomSource
	maxLength int
}

// NewGenerator constructs a [Generator]. A non-positive maxLength selects
// [DefaultMaxLength].
func NewGenerator(rng crypto.RandomSource, maxLength int) *Generator {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	return &Generator{rng: rng, maxLength: maxLength}
}

// GenerateDefault returns a [DefaultLength]-character password including
// symbols.
func (g *Generator) GenerateDefault() (string, error) {
	return g.Generate(DefaultLength, true)
}

// Generate returns a password of length characters, each drawn uniformly
// from upper and lower case letters, digits and, if includeSymbols, the
// [Symbols] set. No character class is guaranteed to appear.
//
// Returns [ErrInvalidInput] if length is below 1 or above the configured
// maximum.
func (g *Generator) Generate(length int, includeSymbols bool) (string, error) {
	if err := g.checkLength(length); err != nil {
		return "", err
	}

	return g.sample(alphabet(includeSymbols), length)
}

// GenerateWithOptions is like [Generator.Generate] but can also enforce at
// least one character from every active class. Enforcement regenerates the
// whole password instead of patching characters, so every accepted result
// is still uniform over the passwords that satisfy the requirement.
func (g *Generator) GenerateWithOptions(req models.PasswordRequest) (string, error) {
	if err := g.checkLength(req.Length); err != nil {
		return "", err
	}
	if !req.RequireEachClass {
		return g.sample(alphabet(req.IncludeSymbols), req.Length)
	}

	classes := activeClasses(req.IncludeSymbols)
	if req.Length < len(classes) {
		return "", fmt.Errorf("length %d cannot hold %d character classes: %w", req.Length, len(classes), ErrInvalidInput)
	}

	chars := alphabet(req.IncludeSymbols)
	for attempt := 0; attempt < maxClassAttempts; attempt++ {
		pw, err := g.sample(chars, req.Length)
		if err != nil {
			return "", err
		}
		if containsEachClass(pw, classes) {
			return pw, nil
		}
	}

	return "", ErrClassRequirementUnmet
}

func (g *Generator) checkLength(length int) error {
	if length < 1 || length > g.maxLength {
		return fmt.Errorf("password length %d outside 1..%d: %w", length, g.maxLength, ErrInvalidInput)
	}
	return nil
}

// sample draws length characters from chars. Bytes at or above the largest
// multiple of len(chars) are discarded so that the modulo reduction does
// not favour the first characters of the alphabet.
func (g *Generator) sample(chars string, length int) (string, error) {
	limit := 256 - 256%len(chars)

	var sb strings.Builder
	sb.Grow(length)

	for sb.Len() < length {
		buf, err := g.rng.Bytes(length - sb.Len())
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteByte(chars[int(b)%len(chars)])
		}
		crypto.Zero(buf)
	}

	return sb.String(), nil
}

func alphabet(includeSymbols bool) string {
	chars := Uppercase + Lowercase + Digits
	if includeSymbols {
		chars += Symbols
	}
	return chars
}

func activeClasses(includeSymbols bool) []string {
	classes := []string{Uppercase, Lowercase, Digits}
	if includeSymbols {
		classes = append(classes, Symbols)
	}
	return classes
}

func containsEachClass(pw string, classes []string) bool {
	for _, class := range classes {
		if !strings.ContainsAny(pw, class) {
			return false
		}
	}
	return true
}
