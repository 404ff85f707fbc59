package errors

// WebAuthnError is the typed error value produced when a failed WebAuthn
// ceremony can be attributed to a specific cause.
//
// Values are immutable once constructed. The original error raised by the
// ceremony is retained as the cause and is reachable through Unwrap, so the
// standard library errors.Is and errors.As keep working on the chain.
type WebAuthnError interface {
	error

	// Code returns the identifier of the diagnosed failure.
	Code() ErrorCode

	// Classification reports whether retrying the ceremony may succeed.
	Classification() ErrorClassification

	// Message returns the human-readable explanation.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the original error raised by the ceremony.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
