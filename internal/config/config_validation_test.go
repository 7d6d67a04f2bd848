package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "raised iterations", mutate: func(c *StructuredConfig) { c.Crypto.KDFIterations = 600000 }},
		{name: "low iterations", mutate: func(c *StructuredConfig) { c.Crypto.KDFIterations = 1000 }, wantErr: ErrInvalidCryptoConfigs},
		{name: "default above max", mutate: func(c *StructuredConfig) { c.Generator.DefaultLength = 2000 }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "zero default length", mutate: func(c *StructuredConfig) { c.Generator.DefaultLength = 0 }, wantErr: ErrInvalidGeneratorConfigs},
		{name: "unknown level", mutate: func(c *StructuredConfig) { c.Log.Level = "verbose" }, wantErr: ErrInvalidLogConfigs},
		{name: "zero concurrency", mutate: func(c *StructuredConfig) { c.Workers.Concurrency = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Workers.BatchTimeout = -1 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
