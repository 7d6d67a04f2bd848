// Package config provides configuration loading, merging, and validation
// facilities for go-pass-crypt.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (path from PASSCRYPT_CONFIG or -c / --config)
//  2. Environment variables with the PASSCRYPT_ prefix
//  3. Command-line flags
//
// Fields left unset by every source fall back to [Defaults]. The main entry
// point is [GetStructuredConfig].
package config
