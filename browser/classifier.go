package browser

import (
	"log/slog"

	"github.com/vibhorag101/SimpleWebAuthn/errors"
)

// ErrMissingPublicKey is returned when the ceremony options have no publicKey
// member. It signals a caller bug and is never a diagnosis.
var ErrMissingPublicKey = errors.New(errors.CodeInvalidOptions, "options was missing required publicKey property")

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used to trace classification decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDomainValidator replaces IsValidDomain as the domain syntax check.
func WithDomainValidator(isValidDomain func(hostname string) bool) Option {
	return func(c *Classifier) {
		if isValidDomain != nil {
			c.isValidDomain = isValidDomain
		}
	}
}

// Classifier maps errors raised by a failed authentication ceremony to
// diagnosis codes. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	env           Environment
	isValidDomain func(string) bool
	logger        *slog.Logger
}

// NewClassifier returns a Classifier reading the given environment.
func NewClassifier(env Environment, opts ...Option) *Classifier {
	c := &Classifier{
		env:           env,
		isValidDomain: IsValidDomain,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IdentifyAuthenticationError attempts to attribute err, raised by an
// authentication ceremony started with options, to a specific cause.
//
// The first return value is either a WebAuthnError wrapping err or err itself
// when no cause can be determined. The second return value is non-nil only
// when options is malformed (ErrMissingPublicKey), in which case err is not
// examined at all.
func (c *Classifier) IdentifyAuthenticationError(err error, options AuthenticationOptions) (error, error) {
	if options.PublicKey == nil {
		return nil, ErrMissingPublicKey
	}
	if err == nil {
		return nil, nil
	}

	name := ErrorNameOf(err)
	diagnosis := c.identify(err, name, options)
	if diagnosis == nil {
		c.logger.Debug("authentication error left unclassified", "name", name.String())
		return err, nil
	}

	c.logger.Debug("classified authentication error",
		"name", name.String(),
		"code", string(diagnosis.Code()),
	)
	return diagnosis, nil
}

// identify returns the diagnosis for err, or nil when no rule applies.
func (c *Classifier) identify(err error, name ErrorName, options AuthenticationOptions) errors.WebAuthnError {
	switch name {
	case AbortError:
		// https://www.w3.org/TR/webauthn-2/#sctn-discover-from-external-source (Step 16)
		if signal, ok := options.Signal.(*AbortSignal); ok && signal != nil {
			return errors.Wrap(err, errors.CodeCeremonyAborted, "Authentication ceremony was sent an abort signal")
		}
		return nil

	case NotAllowedError:
		// https://www.w3.org/TR/webauthn-2/#sctn-discover-from-external-source (Step 3)
		if c.env.Origin() == OpaqueOrigin {
			return errors.Wrap(err, errors.CodeOpaqueOrigin, "The origin of the document is an opaque origin")
		}
		if !c.env.SupportsWebAuthn() {
			return errors.Wrap(err, errors.CodeWebAuthnNotSupported, "Browser does not support WebAuthn")
		}
		// https://www.w3.org/TR/webauthn-2/#sctn-discover-from-external-source (Step 18)
		return errors.Wrap(err, errors.CodeUserCancelledOperation, "User cancelled the operation; try again")

	case SecurityError:
		hostname := c.env.Hostname()
		// https://www.w3.org/TR/webauthn-2/#sctn-discover-from-external-source (Step 5)
		if !c.isValidDomain(hostname) {
			return errors.WrapWithContext(err, errors.CodeInvalidDomain,
				hostname+" is an invalid domain",
				map[string]interface{}{"hostname": hostname})
		}
		// https://www.w3.org/TR/webauthn-2/#sctn-discover-from-external-source (Step 8)
		rpID := options.PublicKey.RPID
		if rpID != hostname {
			return errors.WrapWithContext(err, errors.CodeInvalidRPID,
				`The RP ID "`+rpID+`" is invalid for this domain`,
				map[string]interface{}{"rp_id": rpID, "hostname": hostname})
		}
		return nil

	case UnknownError:
		// https://www.w3.org/TR/webauthn-2/#sctn-op-get-assertion (Step 1)
		// https://www.w3.org/TR/webauthn-2/#sctn-op-get-assertion (Step 12)
		return errors.Wrap(err, errors.CodeAuthenticatorGeneralError,
			"The authenticator was unable to process the specified options, or could not create a new assertion signature")

	default:
		return nil
	}
}

// IdentifyAuthenticationError classifies err with a default Classifier for env.
func IdentifyAuthenticationError(err error, options AuthenticationOptions, env Environment) (error, error) {
	return NewClassifier(env).IdentifyAuthenticationError(err, options)
}
