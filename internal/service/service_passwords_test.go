package service

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/logger"
	"github.com/MKhiriev/go-pass-crypt/internal/password"
	"github.com/MKhiriev/go-pass-crypt/internal/validators"
	"github.com/MKhiriev/go-pass-crypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPasswordSvc(t *testing.T, defaultLength int) PasswordService {
	t.Helper()
	gen := password.NewGenerator(crypto.NewSystemRandom(), 128)
	return NewPasswordService(gen, validators.NewCryptoValidator(128), defaultLength, logger.Nop())
}

func TestPasswordService_Generate(t *testing.T) {
	svc := newPasswordSvc(t, 0)

	pw, err := svc.Generate(20, false)
	require.NoError(t, err)
	assert.Len(t, pw, 20)
	assert.False(t, strings.ContainsAny(pw, password.Symbols))
}

func TestPasswordService_GenerateDefault(t *testing.T) {
	pw, err := newPasswordSvc(t, 0).GenerateDefault()
	require.NoError(t, err)
	assert.Len(t, pw, password.DefaultLength)

	pw, err = newPasswordSvc(t, 24).GenerateDefault()
	require.NoError(t, err)
	assert.Len(t, pw, 24)
}

func TestPasswordService_Generate_InvalidInput(t *testing.T) {
	svc := newPasswordSvc(t, 0)

	_, err := svc.Generate(0, true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Generate(129, true)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GenerateWithOptions(models.PasswordRequest{Length: 2, RequireEachClass: true})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPasswordService_GenerateWithOptions(t *testing.T) {
	svc := newPasswordSvc(t, 0)

	pw, err := svc.GenerateWithOptions(models.PasswordRequest{Length: 8, IncludeSymbols: true, RequireEachClass: true})
	require.NoError(t, err)
	assert.Len(t, pw, 8)
	assert.True(t, strings.ContainsAny(pw, password.Symbols))
}

func TestPasswordService_ScoreAndAnalyze(t *testing.T) {
	svc := newPasswordSvc(t, 0)

	s, ok := svc.Score("Abcdefg1!")
	require.True(t, ok)
	assert.Equal(t, models.Strength{Score: 100, Label: models.Strong}, s)

	_, ok = svc.Score("")
	assert.False(t, ok)

	a := svc.Analyze("abc")
	assert.False(t, a.IsStrong)
	assert.Contains(t, a.Feedback, password.FeedbackTooShort)
}
