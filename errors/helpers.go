package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, browser.ErrMissingPublicKey) {
//	    // Caller bug, not a ceremony failure
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or carries no WebAuthnError.
//
// Example:
//
//	switch errors.GetCode(err) {
//	case errors.CodeUserCancelledOperation:
//	    showRetryPrompt()
//	case errors.CodeInvalidRPID:
//	    reportMisconfiguration()
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var waErr WebAuthnError
	if stderrors.As(err, &waErr) {
		return waErr.Code()
	}

	return CodeUnknown
}

// IsDiagnosed reports whether err carries one of the diagnosis codes.
// An error passed through unclassified reports false.
func IsDiagnosed(err error) bool {
	return GetCode(err).IsDiagnosis()
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or carries no WebAuthnError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var waErr WebAuthnError
	if stderrors.As(err, &waErr) {
		return waErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or carries no WebAuthnError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
