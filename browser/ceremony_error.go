package browser

import (
	"github.com/vibhorag101/SimpleWebAuthn/errors"
)

// ErrorName is the identity of an error raised by a ceremony, modelled on
// DOMException names.
type ErrorName int

const (
	// OtherError is any identity the classifier has no rule for.
	OtherError ErrorName = iota
	// AbortError is raised when the ceremony's abort signal fires.
	AbortError
	// NotAllowedError is raised when the user or the platform refused the request.
	NotAllowedError
	// SecurityError is raised when the effective domain or RP ID is unacceptable.
	SecurityError
	// UnknownError is raised when the authenticator failed for an unspecified reason.
	UnknownError
	// ConstraintError is raised when a required authenticator capability is missing.
	ConstraintError
	// InvalidStateError is raised when the authenticator is in an unexpected state.
	InvalidStateError
	// NotSupportedError is raised when no requested algorithm or parameter is supported.
	NotSupportedError
	// TimeoutError is raised when the ceremony timed out.
	TimeoutError
)

var errorNames = map[ErrorName]string{
	AbortError:        "AbortError",
	NotAllowedError:   "NotAllowedError",
	SecurityError:     "SecurityError",
	UnknownError:      "UnknownError",
	ConstraintError:   "ConstraintError",
	InvalidStateError: "InvalidStateError",
	NotSupportedError: "NotSupportedError",
	TimeoutError:      "TimeoutError",
}

// String returns the DOMException name, or "Error" for OtherError.
func (n ErrorName) String() string {
	if s, ok := errorNames[n]; ok {
		return s
	}
	return "Error"
}

// ParseErrorName maps a DOMException name to an ErrorName.
// Unrecognized names map to OtherError.
func ParseErrorName(name string) ErrorName {
	for n, s := range errorNames {
		if s == name {
			return n
		}
	}
	return OtherError
}

// CeremonyError is an error raised by a WebAuthn ceremony.
type CeremonyError struct {
	// Name is the identity used to pick a diagnosis.
	Name ErrorName

	// RawName is the DOMException name as raised. It is kept verbatim so
	// names outside the ErrorName set still render correctly.
	RawName string

	Message string
}

// NewCeremonyError returns a CeremonyError for the given DOMException name.
func NewCeremonyError(name, message string) *CeremonyError {
	return &CeremonyError{Name: ParseErrorName(name), RawName: name, Message: message}
}

// Error returns "Name: message", using RawName when set.
func (e *CeremonyError) Error() string {
	name := e.RawName
	if name == "" {
		name = e.Name.String()
	}
	if e.Message == "" {
		return name
	}
	return name + ": " + e.Message
}

// ErrorName returns the error's identity.
func (e *CeremonyError) ErrorName() ErrorName {
	return e.Name
}

// namedError is implemented by errors that carry a ceremony identity.
type namedError interface {
	error
	ErrorName() ErrorName
}

// ErrorNameOf returns the identity of the first error in err's chain that
// carries one. Errors without an identity are OtherError.
func ErrorNameOf(err error) ErrorName {
	var named namedError
	if errors.As(err, &named) {
		return named.ErrorName()
	}
	return OtherError
}
