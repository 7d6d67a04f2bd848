package service

import (
	"github.com/MKhiriev/go-pass-crypt/internal/config"
	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/password"
	"github.com/MKhiriev/go-pass-crypt/internal/validators"
)

type Services struct {
	CredentialService CredentialService
	PasswordService   PasswordService
}

// NewServices wires the default crypto provider, generator and validator
// from cfg.
func NewServices(cfg *config.StructuredConfig, log *logger.Logger) *Services {
	provider := crypto.NewDefaultProvider(cfg.Crypto.KDFIterations)
	validator := validators.NewCryptoValidator(cfg.Generator.MaxLength)
	generator := password.NewGenerator(provider.RNG, cfg.Generator.MaxLength)

	return &Services{
		CredentialService: NewCredentialService(provider, validator, log),
		PasswordService:   NewPasswordService(generator, validator, cfg.Generator.DefaultLength, log),
	}
}
