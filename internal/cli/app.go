// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-crypt/internal/config"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/service"
	"github.com/MKhiriev/go-pass-crypt/internal/workers"
	"github.com/MKhiriev/go-pass-crypt/models"
)

// App holds the state shared by all passcrypt commands. Services are built
// lazily from the merged configuration before a command runs.
type App struct {
	buildInfo models.AppBuildInfo

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// copyToClipboard and newServices are replaced in tests.
	copyToClipboard func(string) error
	newServices     func(*config.StructuredConfig, *logger.Logger) *service.Services

	flagCfg  *config.StructuredConfig
	cfg      *config.StructuredConfig
	log      *logger.Logger
	services *service.Services
	pool     *workers.Pool
	input    *inputReader
}

// NewApp constructs an App bound to the process's standard streams.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return &App{
		buildInfo:       buildInfo,
		in:              os.Stdin,
		out:             os.Stdout,
		errOut:          os.Stderr,
		copyToClipboard: clipboard.WriteAll,
		newServices:     service.NewServices,
	}
}

// Run executes args, reports a failure on the error stream and returns the
// process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if err := a.ExecuteContext(ctx, args); err != nil {
		fmt.Fprintf(a.errOut, "Error: %s\n", UserMessage(err))
		if a.log != nil {
			a.log.Debug().Err(err).Msg("command failed")
		}
		return 1
	}
	return 0
}

// ExecuteContext runs the command line described by args (without the
// program name). Cancelling ctx stops batch jobs that have not started.
func (a *App) ExecuteContext(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// setup loads configuration and wires logger, services and pool.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(a.flagCfg)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	var logOut io.Writer = a.errOut
	if cfg.Log.Console {
		logOut = zerolog.ConsoleWriter{Out: a.errOut, NoColor: true}
	}

	a.cfg = cfg
	a.log = logger.NewLogger("passcrypt", level, logOut)
	a.services = a.newServices(cfg, a.log)
	a.pool = workers.NewPool(a.services.CredentialService, cfg.Workers, a.log)
	a.input = newInputReader(a.in, a.errOut)

	a.log.Debug().
		Str("command", cmd.Name()).
		Int("kdf_iterations", cfg.Crypto.KDFIterations).
		Int("concurrency", cfg.Workers.Concurrency).
		Msg("configured")
	return nil
}
