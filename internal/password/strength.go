// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-crypt/models"
)

const (
	// MinLength is the length a password needs to pass the length check.
	MinLength = 8

	// longLength earns the extra length point in [Analyze].
	longLength = 12

	// ScoreSymbols is the punctuation counted by the symbol check of [Score].
	ScoreSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// Feedback messages produced by [Analyze].
const (
	FeedbackTooShort  = "Password should be at least 8 characters long"
	FeedbackLowercase = "Add lowercase letters"
	FeedbackUppercase = "Add uppercase letters"
	FeedbackDigits    = "Add numbers"
	FeedbackSymbols   = "Add special characters"
)

// Score rates password with five checks: at least [MinLength] characters,
// an ASCII lowercase letter, an ASCII uppercase letter, a digit, and a
// character from [ScoreSymbols]. With n checks passed:
//
//	n <= 2  n*20  Weak
//	n == 3  60    Fair
//	n == 4  80    Good
//	n == 5  100   Strong
//
// The second result is false for the empty password, which has no score.
func Score(password string) (models.Strength, bool) {
	if password == "" {
		return models.Strength{}, false
	}

	checks := []bool{
		utf8.RuneCountInString(password) >= MinLength,
		strings.ContainsFunc(password, isLower),
		strings.ContainsFunc(password, isUpper),
		strings.ContainsFunc(password, isDigit),
		strings.ContainsAny(password, ScoreSymbols),
	}

	n := 0
	for _, ok := range checks {
		if ok {
			n++
		}
	}

	switch {
	case n <= 2:
		return models.Strength{Score: n * 20, Label: models.Weak}, true
	case n == 3:
		return models.Strength{Score: 60, Label: models.Fair}, true
	case n == 4:
		return models.Strength{Score: 80, Label: models.Good}, true
	default:
		return models.Strength{Score: 100, Label: models.Strong}, true
	}
}

// Analyze returns a weighted breakdown of password with a suggestion for
// every failed check. Unlike [Score], any non-alphanumeric character
// counts as a symbol here.
func Analyze(password string) models.Analysis {
	var a models.Analysis
	length := utf8.RuneCountInString(password)

	switch {
	case length < MinLength:
		a.Feedback = append(a.Feedback, FeedbackTooShort)
	case length >= longLength:
		a.Points += 2
	default:
		a.Points++
	}

	weighted := []struct {
		ok       bool
		points   int
		feedback string
	}{
		{strings.ContainsFunc(password, isLower), 1, FeedbackLowercase},
		{strings.ContainsFunc(password, isUpper), 1, FeedbackUppercase},
		{strings.ContainsFunc(password, isDigit), 1, FeedbackDigits},
		{strings.ContainsFunc(password, isNotAlnum), 2, FeedbackSymbols},
	}
	for _, w := range weighted {
		if w.ok {
			a.Points += w.points
		} else {
			a.Feedback = append(a.Feedback, w.feedback)
		}
	}

	a.IsStrong = a.Points >= 5 && length >= MinLength
	return a
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isNotAlnum(r rune) bool { return !isLower(r) && !isUpper(r) && !isDigit(r) }
