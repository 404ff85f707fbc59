package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vibhorag101/SimpleWebAuthn/browser"
	"github.com/vibhorag101/SimpleWebAuthn/errors"
)

const rpMismatchYAML = `
error:
  name: SecurityError
  message: The operation is insecure.
options:
  publicKey:
    rpId: example.com
    challenge: Y2hhbGxlbmdl
    timeout: 60s
    userVerification: preferred
environment:
  origin: https://sub.example.org
  hostname: sub.example.org
  webauthnSupported: true
`

func TestDecode(t *testing.T) {
	rep, err := Decode(strings.NewReader(rpMismatchYAML))
	require.NoError(t, err)

	require.Equal(t, "SecurityError", rep.Error.Name)
	require.NotNil(t, rep.Options.PublicKey)
	require.Equal(t, "example.com", rep.Options.PublicKey.RPID)
	require.Equal(t, Timeout(60*time.Second), rep.Options.PublicKey.Timeout)
	require.Equal(t, "sub.example.org", rep.Environment.Hostname)
	require.True(t, rep.Environment.WebAuthnSupported)
}

func TestDecode_JSON(t *testing.T) {
	input := `{"error":{"name":"UnknownError"},"options":{"publicKey":{"rpId":"example.com"}},` +
		`"environment":{"origin":"https://example.com","hostname":"example.com","webauthnSupported":true}}`

	rep, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "UnknownError", rep.Error.Name)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("error: [unterminated"))
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidOptions, errors.GetCode(err))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rpMismatchYAML), 0o600))

	rep, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "SecurityError", rep.Error.Name)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidOptions, errors.GetCode(err))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		diagnosed bool
		code      string
	}{
		{
			name:      "rp id mismatch",
			input:     rpMismatchYAML,
			diagnosed: true,
			code:      "INVALID_RP_ID",
		},
		{
			name: "abort with abort signal",
			input: `
error: {name: AbortError}
options: {publicKey: {rpId: example.com}, signal: abort}
environment: {origin: "https://example.com", hostname: example.com, webauthnSupported: true}
`,
			diagnosed: true,
			code:      "CEREMONY_ABORTED",
		},
		{
			name: "abort with context signal",
			input: `
error: {name: AbortError, message: aborted}
options: {publicKey: {rpId: example.com}, signal: context}
environment: {origin: "https://example.com", hostname: example.com, webauthnSupported: true}
`,
			diagnosed: false,
			code:      "UNKNOWN",
		},
		{
			name: "opaque origin",
			input: `
error: {name: NotAllowedError}
options: {publicKey: {rpId: example.com}}
environment: {origin: "null", hostname: "", webauthnSupported: true}
`,
			diagnosed: true,
			code:      "OPAQUE_ORIGIN",
		},
		{
			name: "constraint error passes through",
			input: `
error: {name: ConstraintError, message: user verification required}
options: {publicKey: {rpId: example.com}}
environment: {origin: "https://example.com", hostname: example.com, webauthnSupported: true}
`,
			diagnosed: false,
			code:      "UNKNOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)

			result, err := rep.Run()
			require.NoError(t, err)
			require.Equal(t, tt.diagnosed, result.Diagnosed)
			require.Equal(t, tt.code, result.Error.Code)
		})
	}
}

func TestRun_PassthroughKeepsRaisedMessage(t *testing.T) {
	rep, err := Decode(strings.NewReader(`
error: {name: ConstraintError, message: user verification required}
options: {publicKey: {rpId: example.com}}
`))
	require.NoError(t, err)

	result, err := rep.Run()
	require.NoError(t, err)
	require.Equal(t, "ConstraintError: user verification required", result.Error.Message)
}

func TestRun_MissingPublicKey(t *testing.T) {
	rep, err := Decode(strings.NewReader(`
error: {name: NotAllowedError}
environment: {origin: "null"}
`))
	require.NoError(t, err)

	_, err = rep.Run()
	require.ErrorIs(t, err, browser.ErrMissingPublicKey)
}

func TestRun_InvalidOptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown signal", input: "options: {publicKey: {rpId: example.com}, signal: timer}"},
		{name: "bad challenge", input: "options: {publicKey: {rpId: example.com, challenge: '***'}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)

			_, err = rep.Run()
			require.Error(t, err)
			require.Equal(t, errors.CodeInvalidOptions, errors.GetCode(err))
		})
	}
}

func TestDecode_Timeout(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{
			name:  "json milliseconds",
			input: `{"options":{"publicKey":{"rpId":"example.com","timeout":60000}}}`,
			want:  60 * time.Second,
		},
		{
			name:  "yaml milliseconds",
			input: "options: {publicKey: {timeout: 1500}}",
			want:  1500 * time.Millisecond,
		},
		{
			name:  "duration string",
			input: "options: {publicKey: {timeout: 2m}}",
			want:  2 * time.Minute,
		},
		{
			name:  "absent",
			input: "options: {publicKey: {rpId: example.com}}",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, Timeout(tt.want), rep.Options.PublicKey.Timeout)

			options, err := rep.authenticationOptions()
			require.NoError(t, err)
			require.Equal(t, tt.want, options.PublicKey.Timeout)
		})
	}
}

func TestDecode_InvalidTimeout(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a duration", input: "options: {publicKey: {timeout: soon}}"},
		{name: "sequence", input: "options: {publicKey: {timeout: [1, 2]}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			require.Equal(t, errors.CodeInvalidOptions, errors.GetCode(err))
		})
	}
}

func TestRun_MissingPublicKeyWinsOverBadSignal(t *testing.T) {
	rep, err := Decode(strings.NewReader(`
error: {name: NotAllowedError}
options: {signal: timer}
`))
	require.NoError(t, err)

	_, err = rep.Run()
	require.ErrorIs(t, err, browser.ErrMissingPublicKey)
}

func TestRun_UnrecognizedNameKeepsRawName(t *testing.T) {
	rep, err := Decode(strings.NewReader(`
error: {name: EncodingError, message: boom}
options: {publicKey: {rpId: example.com}}
`))
	require.NoError(t, err)

	result, err := rep.Run()
	require.NoError(t, err)
	require.False(t, result.Diagnosed)
	require.Equal(t, "EncodingError: boom", result.Error.Message)
}
