// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/password"
	"github.com/MKhiriev/go-pass-crypt/internal/validators"
	"github.com/MKhiriev/go-pass-crypt/models"
)

type passwordService struct {
	generator     *password.Generator
	validator     validators.Validator
	defaultLength int
	logger        *logger.Logger
}

// NewPasswordService constructs a [PasswordService]. A non-positive
// defaultLength selects password.DefaultLength.
func NewPasswordService(generator *password.Generator, validator validators.Validator, defaultLength int, log *logger.Logger) PasswordService {
	if defaultLength <= 0 {
		defaultLength = password.DefaultLength
	}

	return &passwordService{
		generator:     generator,
		validator:     validator,
		defaultLength: defaultLength,
		logger:        log,
	}
}

func (s *passwordService) Generate(length int, includeSymbols bool) (string, error) {
	return s.GenerateWithOptions(models.PasswordRequest{Length: length, IncludeSymbols: includeSymbols})
}

func (s *passwordService) GenerateDefault() (string, error) {
	return s.Generate(s.defaultLength, true)
}

func (s *passwordService) GenerateWithOptions(req models.PasswordRequest) (string, error) {
	if err := s.validator.Validate(context.Background(), req); err != nil {
		s.logger.Warn().Err(err).Int("length", req.Length).Msg("generate password: invalid request")
		return "", err
	}

	pw, err := s.generator.GenerateWithOptions(req)
	if err != nil {
		s.logger.Error().Err(err).Msg("generate password")
		return "", err
	}

	s.logger.Debug().
		Int("length", req.Length).
		Bool("symbols", req.IncludeSymbols).
		Bool("each_class", req.RequireEachClass).
		Msg("password generated")
	return pw, nil
}

func (s *passwordService) Score(pw string) (models.Strength, bool) {
	return password.Score(pw)
}

func (s *passwordService) Analyze(pw string) models.Analysis {
	return password.Analyze(pw)
}
