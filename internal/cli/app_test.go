package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-crypt/internal/config"
	"github.com/MKhiriev/go-pass-crypt/internal/crypto"
	"github.com/MKhiriev/go-pass-crypt/internal/service"
	"github.com/MKhiriev/go-pass-crypt/models"
)

type testApp struct {
	*App
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	copied  []string
	copyErr error
}

func newTestApp(stdin string) *testApp {
	color.NoColor = true

	t := &testApp{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	t.App = &App{
		buildInfo: models.NewAppBuildInfo("1.2.3", "2026-10-16", "abc123"),
		in:        strings.NewReader(stdin),
		out:       t.stdout,
		errOut:    t.stderr,
		copyToClipboard: func(s string) error {
			t.copied = append(t.copied, s)
			return t.copyErr
		},
		newServices: service.NewServices,
	}
	return t
}

func (t *testApp) run(args ...string) error {
	return t.ExecuteContext(context.Background(), append(args, "--log-level", "error"))
}

func outputLines(b *bytes.Buffer) []string {
	s := strings.TrimSpace(b.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	enc := newTestApp("master\nmy-bank-password\n")
	require.NoError(t, enc.run("encrypt"))

	lines := outputLines(enc.stdout)
	require.Len(t, lines, 1)
	_, err := crypto.ParseEnvelope(lines[0])
	require.NoError(t, err)
	assert.NotContains(t, enc.stderr.String(), "my-bank-password")

	dec := newTestApp("master\n")
	require.NoError(t, dec.run("decrypt", lines[0]))
	assert.Equal(t, []string{"my-bank-password"}, outputLines(dec.stdout))
}

func TestEncryptDecrypt_Batch(t *testing.T) {
	enc := newTestApp("master\nfirst\n\nsecond\nthird\n")
	require.NoError(t, enc.run("encrypt", "--batch", "--concurrency", "2"))

	envelopes := outputLines(enc.stdout)
	require.Len(t, envelopes, 3)

	dec := newTestApp("master\n" + strings.Join(envelopes, "\n") + "\n")
	require.NoError(t, dec.run("decrypt"))
	assert.Equal(t, []string{"first", "second", "third"}, outputLines(dec.stdout))
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	enc := newTestApp("right\nsecret\n")
	require.NoError(t, enc.run("encrypt"))

	dec := newTestApp("wrong\n")
	err := dec.run("decrypt", strings.TrimSpace(enc.stdout.String()))
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
	assert.Empty(t, dec.stdout.String())
}

func TestDecrypt_MalformedEnvelope(t *testing.T) {
	dec := newTestApp("master\n")
	err := dec.run("decrypt", "not-a-valid-envelope")
	assert.ErrorIs(t, err, crypto.ErrParse)
}

func TestEncrypt_MissingInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
	}{
		{name: "no passphrase", stdin: ""},
		{name: "no secret", stdin: "master\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.stdin)
			assert.ErrorIs(t, app.run("encrypt"), ErrNoInput)
		})
	}
}

func TestEncrypt_EmptyPassphrase(t *testing.T) {
	app := newTestApp("\nsecret\n")
	assert.ErrorIs(t, app.run("encrypt"), crypto.ErrInvalidInput)
}

func TestEncrypt_InvalidConfig(t *testing.T) {
	app := newTestApp("master\nsecret\n")
	err := app.run("encrypt", "--kdf-iterations", "5")
	assert.ErrorIs(t, err, config.ErrInvalidCryptoConfigs)
	assert.Empty(t, app.stdout.String())
}

func TestGenerate(t *testing.T) {
	app := newTestApp("")
	require.NoError(t, app.run("generate", "--length", "24", "--no-symbols"))

	lines := outputLines(app.stdout)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 24)
	for _, c := range lines[0] {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'), "unexpected %q", c)
	}
	assert.Contains(t, app.stderr.String(), "Strength: ")
}

func TestGenerate_DefaultLengthFromConfig(t *testing.T) {
	app := newTestApp("")
	require.NoError(t, app.run("generate", "--default-length", "20"))

	lines := outputLines(app.stdout)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 20)
}

func TestGenerate_EachClass(t *testing.T) {
	app := newTestApp("")
	require.NoError(t, app.run("generate", "-l", "8", "--each-class"))

	pw := strings.TrimSpace(app.stdout.String())
	assert.Len(t, pw, 8)
	assert.True(t, strings.ContainsAny(pw, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	assert.True(t, strings.ContainsAny(pw, "abcdefghijklmnopqrstuvwxyz"))
	assert.True(t, strings.ContainsAny(pw, "0123456789"))
	assert.True(t, strings.ContainsAny(pw, "!@#$%^&*()_+-=[]{}|;:,.<>?"))
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, length := range []string{"0", "-1", "1025"} {
		t.Run(length, func(t *testing.T) {
			app := newTestApp("")
			err := app.run("generate", "--length="+length)
			assert.ErrorIs(t, err, crypto.ErrInvalidInput)
			assert.Empty(t, app.stdout.String())
		})
	}
}

func TestGenerate_Copy(t *testing.T) {
	app := newTestApp("")
	require.NoError(t, app.run("generate", "--copy"))

	require.Len(t, app.copied, 1)
	assert.Len(t, app.copied[0], 16)
	assert.Empty(t, app.stdout.String())
	assert.Contains(t, app.stderr.String(), "copied to clipboard")
}

func TestGenerate_CopyFails(t *testing.T) {
	app := newTestApp("")
	app.copyErr = errors.New("no clipboard utility")

	err := app.run("generate", "--copy")
	assert.ErrorIs(t, err, app.copyErr)
}

func TestScore(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{password: "abc", want: "Strength: Weak (20/100)"},
		{password: "Abcdefg1", want: "Strength: Good (80/100)"},
		{password: "Abcdefg1!", want: "Strength: Strong (100/100)"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			app := newTestApp(tt.password + "\n")
			require.NoError(t, app.run("score"))
			assert.Equal(t, []string{tt.want}, outputLines(app.stdout))
		})
	}
}

func TestScore_Details(t *testing.T) {
	app := newTestApp("abc\n")
	require.NoError(t, app.run("score", "--details"))

	out := app.stdout.String()
	assert.Contains(t, out, "  - Password should be at least 8 characters long")
	assert.Contains(t, out, "  - Add uppercase letters")
	assert.NotContains(t, out, "Add lowercase letters")
}

func TestScore_EmptyPasswordPrintsNothing(t *testing.T) {
	app := newTestApp("\n")
	require.NoError(t, app.run("score"))
	assert.Empty(t, app.stdout.String())
}

func TestVersion(t *testing.T) {
	app := newTestApp("")
	require.NoError(t, app.ExecuteContext(context.Background(), []string{"version"}))

	assert.Equal(t, []string{
		"Build version: 1.2.3",
		"Build date: 2026-10-16",
		"Build commit: abc123",
	}, outputLines(app.stdout))
}
