// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-crypt/models"
)

func (a *App) generateCommand() *cobra.Command {
	var (
		length    int
		noSymbols bool
		eachClass bool
		copyOut   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.cfg.Generator.DefaultLength
			}

			pw, err := a.services.PasswordService.GenerateWithOptions(models.PasswordRequest{
				Length:           length,
				IncludeSymbols:   !noSymbols,
				RequireEachClass: eachClass,
			})
			if err != nil {
				return err
			}

			if copyOut {
				if err := a.copyToClipboard(pw); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(a.errOut, "Password copied to clipboard.")
			} else {
				fmt.Fprintln(a.out, pw)
			}

			if s, ok := a.services.PasswordService.Score(pw); ok {
				printStrength(a.errOut, s)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "Password length (default from config)")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Letters and digits only")
	cmd.Flags().BoolVar(&eachClass, "each-class", false, "Require every character class at least once")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy to the clipboard instead of printing")

	return cmd
}
