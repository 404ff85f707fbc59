package errors

import (
	"fmt"
	"maps"
)

// webAuthnError is the concrete implementation of WebAuthnError.
// It is private to enforce construction through package functions.
type webAuthnError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *webAuthnError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *webAuthnError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *webAuthnError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *webAuthnError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none is attached.
func (e *webAuthnError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	return maps.Clone(e.context)
}

// Unwrap returns the original ceremony error for standard library compatibility.
func (e *webAuthnError) Unwrap() error {
	return e.cause
}
