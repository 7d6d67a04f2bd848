// Package password generates random passwords and estimates the strength of
// candidate passwords.
//
// Generation draws every character independently and uniformly from the
// active alphabet using a cryptographically secure [crypto.RandomSource].
// Strength estimation is purely advisory and independent of encryption.
package password
