// Package cli implements the passcrypt command line: a thin caller that
// feeds plaintexts and master passphrases to the credential and password
// services and prints the results.
//
// Secrets are read from the terminal without echo, or line by line from
// standard input when it is not a terminal. They are never accepted as
// command-line arguments.
package cli
