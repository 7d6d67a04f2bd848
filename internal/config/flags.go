package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they write into. The returned value is only meaningful after fs has been
// parsed; pass it to [GetStructuredConfig].
//
// Flags:
//
//	-c/--config          json file path with configs
//	--kdf-iterations     PBKDF2 iteration count
//	--default-length     default generated password length
//	--max-length         maximum generated password length
//	--log-level          log level (debug, info, warn, error)
//	--log-console        human-readable log output
//	--concurrency        parallel key derivations in batch mode
//	--batch-timeout      time limit for a batch (e.g., "30s", "1m")
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.IntVar(&cfg.Crypto.KDFIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.IntVar(&cfg.Generator.DefaultLength, "default-length", 0, "Default generated password length")
	fs.IntVar(&cfg.Generator.MaxLength, "max-length", 0, "Maximum generated password length")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Log.Console, "log-console", false, "Human-readable log output")
	fs.IntVar(&cfg.Workers.Concurrency, "concurrency", 0, "Parallel key derivations in batch mode")
	fs.DurationVar(&cfg.Workers.BatchTimeout, "batch-timeout", 0, "Time limit for a batch (e.g., 30s, 1m)")

	return cfg
}
