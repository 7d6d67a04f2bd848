package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-crypt/internal/config"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "passcrypt",
		Short: "Encrypt credentials under a master passphrase and generate passwords",
		Long: `passcrypt seals credentials into self-describing envelopes
(base64(salt):base64(iv):base64(ciphertext)) that only the master
passphrase can open, generates random passwords and rates password strength.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	a.flagCfg = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.encryptCommand(),
		a.decryptCommand(),
		a.generateCommand(),
		a.scoreCommand(),
		a.versionCommand(),
	)

	return root
}
