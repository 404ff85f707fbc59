// Package report loads a description of a failed authentication ceremony
// from a YAML or JSON file and diagnoses it.
package report

import (
	"context"
	"encoding/base64"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vibhorag101/SimpleWebAuthn/browser"
	"github.com/vibhorag101/SimpleWebAuthn/errors"
)

// Signal kinds accepted in a report.
const (
	SignalNone    = "none"
	SignalAbort   = "abort"
	SignalContext = "context"
)

// Report describes a failed authentication ceremony.
type Report struct {
	Error       RaisedError `yaml:"error"`
	Options     Options     `yaml:"options"`
	Environment Environment `yaml:"environment"`
}

// RaisedError is the DOMException the ceremony failed with.
type RaisedError struct {
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
}

// Options mirrors browser.AuthenticationOptions.
type Options struct {
	PublicKey *PublicKey `yaml:"publicKey"`
	Signal    string     `yaml:"signal"`
}

// PublicKey mirrors browser.PublicKeyCredentialRequestOptions.
type PublicKey struct {
	RPID             string        `yaml:"rpId"`
	Challenge        string        `yaml:"challenge"`
	Timeout          Timeout       `yaml:"timeout"`
	UserVerification string        `yaml:"userVerification"`
}

// Environment mirrors browser.StaticEnvironment.
type Environment struct {
	Origin            string `yaml:"origin"`
	Hostname          string `yaml:"hostname"`
	WebAuthnSupported bool   `yaml:"webauthnSupported"`
}

// Result is the outcome of diagnosing a Report.
type Result struct {
	// Diagnosed is false when the raised error was passed through unclassified.
	Diagnosed bool                  `json:"diagnosed"`
	Error     *errors.ErrorResponse `json:"error"`
}

// Load reads and decodes the report at path.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidOptions, "failed to open report %s", path)
	}
	defer f.Close()

	return Decode(f)
}

// Decode decodes a report from r. JSON input is accepted.
func Decode(r io.Reader) (*Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidOptions, "failed to decode report")
	}
	return &rep, nil
}

// Run diagnoses the report. A report without publicKey options yields
// browser.ErrMissingPublicKey before any other option is checked.
func (r *Report) Run(opts ...browser.Option) (*Result, error) {
	options, err := r.authenticationOptions()
	if err != nil {
		return nil, err
	}

	raised := browser.NewCeremonyError(r.Error.Name, r.Error.Message)
	env := browser.StaticEnvironment{
		OriginValue:   r.Environment.Origin,
		HostnameValue: r.Environment.Hostname,
		WebAuthn:      r.Environment.WebAuthnSupported,
	}

	diagnosed, err := browser.NewClassifier(env, opts...).IdentifyAuthenticationError(raised, options)
	if err != nil {
		return nil, err
	}

	return &Result{
		Diagnosed: errors.IsDiagnosed(diagnosed),
		Error:     errors.ToJSON(diagnosed),
	}, nil
}

func (r *Report) authenticationOptions() (browser.AuthenticationOptions, error) {
	var options browser.AuthenticationOptions

	pk := r.Options.PublicKey
	if pk == nil {
		return options, browser.ErrMissingPublicKey
	}

	switch r.Options.Signal {
	case "", SignalNone:
	case SignalAbort:
		options.Signal = browser.NewAbortController().Signal()
	case SignalContext:
		options.Signal = context.Background()
	default:
		return options, errors.Newf(errors.CodeInvalidOptions, "unknown signal kind %q", r.Options.Signal)
	}

	challenge, err := base64.RawURLEncoding.DecodeString(pk.Challenge)
	if err != nil {
		return options, errors.Wrap(err, errors.CodeInvalidOptions, "challenge is not base64url")
	}
	options.PublicKey = &browser.PublicKeyCredentialRequestOptions{
		Challenge:        challenge,
		Timeout:          time.Duration(pk.Timeout),
		RPID:             pk.RPID,
		UserVerification: browser.UserVerificationRequirement(pk.UserVerification),
	}

	return options, nil
}

// Timeout is a ceremony timeout. It decodes from an integer number of
// milliseconds, as in WebAuthn JSON options, or from a duration string such as "60s".
type Timeout time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Timeout) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf(errors.CodeInvalidOptions, "line %d: timeout must be a scalar", value.Line)
	}

	if value.ShortTag() == "!!int" {
		var ms int64
		if err := value.Decode(&ms); err != nil {
			return errors.Wrapf(err, errors.CodeInvalidOptions, "line %d: invalid timeout", value.Line)
		}
		*t = Timeout(time.Duration(ms) * time.Millisecond)
		return nil
	}

	d, err := time.ParseDuration(value.Value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidOptions, "line %d: invalid timeout %q", value.Line, value.Value)
	}
	*t = Timeout(d)
	return nil
}
