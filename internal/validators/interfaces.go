// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks caller input before it reaches the credential
// and password services.
//
// A Validator accepts a request value and, optionally, the names of the
// fields to check (see the Field* constants). With no field names every
// field known for that request type is checked. All input errors match
// crypto.ErrInvalidInput.
package validators

import "context"

// Validator validates a request value, optionally restricted to specific
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
