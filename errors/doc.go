// Package errors provides the typed error value for diagnosed WebAuthn
// ceremony failures.
//
// A WebAuthnError carries a code from a closed set, a human-readable message,
// a retry classification, optional context metadata, and the original error
// raised by the ceremony as its cause. It is fully compatible with the standard
// library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Error Codes
//
// Diagnosis codes (see DiagnosisCodes):
//
//   - CodeCeremonyAborted: the ceremony's abort signal fired
//   - CodeOpaqueOrigin: the ceremony ran in an opaque origin
//   - CodeWebAuthnNotSupported: the environment lacks WebAuthn
//   - CodeUserCancelledOperation: the user cancelled the prompt
//   - CodeInvalidDomain: the effective domain is not a valid domain
//   - CodeInvalidRPID: the RP ID does not match the effective domain
//   - CodeAuthenticatorGeneralError: the authenticator could not produce an assertion
//
// CodeInvalidOptions marks caller mistakes and is never a diagnosis.
// CodeUnknown is reported by GetCode for errors that carry no code.
//
// # Usage
//
//	err := errors.Wrap(raised, errors.CodeUserCancelledOperation, "user cancelled the operation; try again")
//
//	if errors.IsRetryable(err) {
//	    offerRetry()
//	}
//
//	var waErr errors.WebAuthnError
//	if errors.As(err, &waErr) {
//	    log.Printf("diagnosed %s: %v", waErr.Code(), waErr.Unwrap())
//	}
//
// # JSON
//
// ToJSON and MarshalJSON render code, message, classification and context.
// The cause chain is never serialized.
package errors
