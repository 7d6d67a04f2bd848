package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) decryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [envelope...]",
		Short: "Open envelopes with the master passphrase",
		Long: `Reads the master passphrase and prints the secret of every envelope.

Envelopes are taken from the arguments or, if there are none, from the
remaining input lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := a.input.ReadSecret("Master passphrase: ")
			if err != nil {
				return err
			}

			envelopes := args
			if len(envelopes) == 0 {
				if envelopes, err = a.input.ReadLines(); err != nil {
					return err
				}
			}

			stop := startProgress(a.errOut, "Opening...")
			secrets, err := a.pool.OpenAll(cmd.Context(), envelopes, passphrase)
			stop()
			if err != nil {
				return err
			}

			for _, s := range secrets {
				fmt.Fprintln(a.out, s)
			}
			return nil
		},
	}
}
