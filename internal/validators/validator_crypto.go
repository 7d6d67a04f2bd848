// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-pass-crypt/models"
)

// CryptoValidator validates requests reaching the credential and password
// services before any random bytes are drawn or keys derived.
type CryptoValidator struct {
	maxLength int
}

// NewCryptoValidator constructs a [Validator] accepting password lengths
// in 1..maxLength.
func NewCryptoValidator(maxLength int) Validator {
	return &CryptoValidator{maxLength: maxLength}
}

func (v *CryptoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PasswordRequest:
		return v.validatePasswordRequest(ctx, value, fields...)
	case *models.PasswordRequest:
		return v.validatePasswordRequest(ctx, *value, fields...)

	case models.SealRequest:
		return v.validatePassphrase(value.Passphrase, fields...)
	case *models.SealRequest:
		return v.validatePassphrase(value.Passphrase, fields...)

	case models.OpenRequest:
		return v.validatePassphrase(value.Passphrase, fields...)
	case *models.OpenRequest:
		return v.validatePassphrase(value.Passphrase, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CryptoValidator) validatePasswordRequest(_ context.Context, request models.PasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldClasses}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if request.Length < 1 || request.Length > v.maxLength {
				return ErrInvalidLength
			}
		case FieldClasses:
			if !request.RequireEachClass {
				continue
			}
			classes := 3
			if request.IncludeSymbols {
				classes++
			}
			if request.Length < classes {
				return ErrTooManyClasses
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CryptoValidator) validatePassphrase(passphrase string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldPassphrase:
			if passphrase == "" {
				return ErrEmptyPassphrase
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
