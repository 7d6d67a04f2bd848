// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StrengthLabel is the human-readable bucket a password score falls into.
type StrengthLabel string

const (
	// Weak covers passwords passing at most two of the five checks.
	Weak StrengthLabel = "Weak"

	// Fair covers passwords passing exactly three checks.
	Fair StrengthLabel = "Fair"

	// Good covers passwords passing exactly four checks.
	Good StrengthLabel = "Good"

	// Strong covers passwords passing all five checks.
	Strong StrengthLabel = "Strong"
)

// Strength is the advisory result of scoring a candidate password.
// It never blocks encryption.
type Strength struct {
	// Score is a value in 0..100, in steps of 20.
	Score int `json:"score"`

	// Label is the bucket Score belongs to.
	Label StrengthLabel `json:"label"`
}

// Analysis is a detailed advisory breakdown of a candidate password with
// a suggestion for every check it fails.
type Analysis struct {
	// Points accumulates weighted checks. Length of 12 or more and the
	// presence of any non-alphanumeric character count double.
	Points int `json:"points"`

	// Feedback lists one suggestion per failed check, in check order.
	Feedback []string `json:"feedback"`

	// IsStrong reports Points >= 5 with at least 8 characters.
	IsStrong bool `json:"is_strong"`
}
