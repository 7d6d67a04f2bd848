package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Build info needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(a.out, "Build version: %s\n", a.buildInfo.BuildVersion())
			fmt.Fprintf(a.out, "Build date: %s\n", a.buildInfo.BuildDate())
			fmt.Fprintf(a.out, "Build commit: %s\n", a.buildInfo.BuildCommit())
		},
	}
}
