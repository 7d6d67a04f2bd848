package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-crypt/models"
)

var labelColors = map[models.StrengthLabel]color.Attribute{
	models.Weak:   color.FgRed,
	models.Fair:   color.FgHiYellow,
	models.Good:   color.FgYellow,
	models.Strong: color.FgGreen,
}

func (a *App) scoreCommand() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rate the strength of a password",
		Long:  "Reads a password and prints its advisory strength. Nothing is printed for an empty password.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			pw, err := a.input.ReadSecret("Password: ")
			if err != nil {
				return err
			}

			s, ok := a.services.PasswordService.Score(pw)
			if !ok {
				return nil
			}
			printStrength(a.out, s)

			if details {
				for _, f := range a.services.PasswordService.Analyze(pw).Feedback {
					fmt.Fprintf(a.out, "  - %s\n", f)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "Print improvement suggestions")
	return cmd
}

func printStrength(w io.Writer, s models.Strength) {
	label := color.New(labelColors[s.Label]).Sprint(s.Label)
	fmt.Fprintf(w, "Strength: %s (%d/100)\n", label, s.Score)
}
