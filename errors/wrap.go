package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Wrap attaches a diagnosis to the error raised by a ceremony.
// The original error is kept as-is and returned by Unwrap.
//
// If err already carries a WebAuthnError, its classification is preserved.
// Otherwise the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if name == NotAllowedError && env.Origin() == OpaqueOrigin {
//	    return errors.Wrap(err, errors.CodeOpaqueOrigin, "the origin is an opaque origin")
//	}
func Wrap(err error, code ErrorCode, message string) WebAuthnError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) WebAuthnError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeInvalidDomain, msg, map[string]interface{}{
//	    "hostname": hostname,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) WebAuthnError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var waErr WebAuthnError
	if errors.As(err, &waErr) {
		classification = waErr.Classification()
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = maps.Clone(ctx)
	}

	return &webAuthnError{
		code:           code,
		classification: classification,
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}
