// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrPassphraseMismatch is returned when the confirmation does not match.
var ErrPassphraseMismatch = errors.New("passphrases do not match")

func (a *App) encryptCommand() *cobra.Command {
	var batch bool

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Seal a secret into an envelope",
		Long: `Reads the master passphrase, then the secret, and prints the envelope.

With --batch, every remaining input line after the passphrase is a secret
and one envelope is printed per line, in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passphrase, err := a.readNewPassphrase()
			if err != nil {
				return err
			}

			var secrets []string
			if batch {
				secrets, err = a.input.ReadLines()
			} else {
				var secret string
				secret, err = a.input.ReadSecret("Secret: ")
				secrets = []string{secret}
			}
			if err != nil {
				return err
			}

			stop := startProgress(a.errOut, "Sealing...")
			envelopes, err := a.pool.SealAll(cmd.Context(), secrets, passphrase)
			stop()
			if err != nil {
				return err
			}

			for _, env := range envelopes {
				fmt.Fprintln(a.out, env)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&batch, "batch", false, "Read one secret per input line")
	return cmd
}

// readNewPassphrase asks twice on a terminal so a typo cannot seal data
// under an unknown passphrase.
func (a *App) readNewPassphrase() (string, error) {
	passphrase, err := a.input.ReadSecret("Master passphrase: ")
	if err != nil {
		return "", err
	}
	if !a.input.terminal {
		return passphrase, nil
	}

	confirm, err := a.input.ReadSecret("Repeat master passphrase: ")
	if err != nil {
		return "", err
	}
	if confirm != passphrase {
		return "", ErrPassphraseMismatch
	}

	return passphrase, nil
}
