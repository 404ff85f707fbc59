package errors

import "fmt"

// New creates a WebAuthnError with the given code and message and no cause.
// The classification is the default for the code.
//
// Example:
//
//	var ErrMissingPublicKey = errors.New(errors.CodeInvalidOptions, "options missing publicKey")
func New(code ErrorCode, message string) WebAuthnError {
	return &webAuthnError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a WebAuthnError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) WebAuthnError {
	return New(code, fmt.Sprintf(format, args...))
}
