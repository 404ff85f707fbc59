package errors

// ErrorClassification indicates whether a failed ceremony is worth retrying.
// Callers use it to decide between offering a "try again" action and showing
// a terminal error.
type ErrorClassification string

const (
	// ClassificationRetryable indicates the ceremony may succeed if started again.
	// Examples: the user dismissed the prompt, the authenticator hiccupped.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates the ceremony will fail again without
	// a change to the page or its configuration.
	// Examples: opaque origin, invalid RP ID, no WebAuthn support.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeCeremonyAborted:           ClassificationRetryable,
	CodeUserCancelledOperation:    ClassificationRetryable,
	CodeAuthenticatorGeneralError: ClassificationRetryable,

	CodeOpaqueOrigin:         ClassificationPermanent,
	CodeWebAuthnNotSupported: ClassificationPermanent,
	CodeInvalidDomain:        ClassificationPermanent,
	CodeInvalidRPID:          ClassificationPermanent,
	CodeInvalidOptions:       ClassificationPermanent,
	CodeUnknown:              ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}

// DefaultClassification returns the classification given to new errors with this code.
func (c ErrorCode) DefaultClassification() ErrorClassification {
	return getDefaultClassification(c)
}
