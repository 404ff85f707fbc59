package errors

import (
	"errors"
	"maps"
)

// WithContext adds a single context field to an error.
// Returns a new WebAuthnError; err itself is left untouched.
//
// If err is not a WebAuthnError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "rp_id", opts.PublicKey.RPID)
func WithContext(err error, key string, value interface{}) WebAuthnError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Existing fields are preserved; new fields override existing ones with the same key.
//
// If err is not a WebAuthnError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) WebAuthnError {
	if err == nil {
		return nil
	}

	base := asWebAuthnError(err)

	merged := make(map[string]interface{}, len(ctx))
	if existing := base.Context(); existing != nil {
		maps.Copy(merged, existing)
	}
	maps.Copy(merged, ctx)

	return &webAuthnError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// asWebAuthnError returns the first WebAuthnError in err's chain, or wraps a
// plain error as CodeUnknown.
func asWebAuthnError(err error) WebAuthnError {
	var waErr WebAuthnError
	if errors.As(err, &waErr) {
		return waErr
	}
	return &webAuthnError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
