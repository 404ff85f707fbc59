package errors

// ErrorCode identifies a diagnosed failure.
// Codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Ceremony diagnoses.

	// CodeCeremonyAborted indicates the ceremony was cancelled through its abort signal.
	CodeCeremonyAborted ErrorCode = "CEREMONY_ABORTED"

	// CodeOpaqueOrigin indicates the ceremony was started from an opaque origin.
	CodeOpaqueOrigin ErrorCode = "OPAQUE_ORIGIN"

	// CodeWebAuthnNotSupported indicates the environment has no WebAuthn support.
	CodeWebAuthnNotSupported ErrorCode = "WEBAUTHN_NOT_SUPPORTED"

	// CodeUserCancelledOperation indicates the user dismissed or timed out the prompt.
	CodeUserCancelledOperation ErrorCode = "USER_CANCELLED_OPERATION"

	// CodeInvalidDomain indicates the effective domain is not a valid domain.
	CodeInvalidDomain ErrorCode = "INVALID_DOMAIN"

	// CodeInvalidRPID indicates the requested RP ID does not match the effective domain.
	CodeInvalidRPID ErrorCode = "INVALID_RP_ID"

	// CodeAuthenticatorGeneralError indicates the authenticator failed to
	// process the options or to produce an assertion signature.
	CodeAuthenticatorGeneralError ErrorCode = "AUTHENTICATOR_GENERAL_ERROR"

	// Caller errors.

	// CodeInvalidOptions indicates the caller passed malformed ceremony options.
	// It is never a diagnosis.
	CodeInvalidOptions ErrorCode = "INVALID_OPTIONS"

	// Generic errors.

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// diagnosisCodes is the closed set of codes a classifier may produce.
var diagnosisCodes = []ErrorCode{
	CodeCeremonyAborted,
	CodeOpaqueOrigin,
	CodeWebAuthnNotSupported,
	CodeUserCancelledOperation,
	CodeInvalidDomain,
	CodeInvalidRPID,
	CodeAuthenticatorGeneralError,
}

// DiagnosisCodes returns the closed set of diagnosis codes in a stable order.
func DiagnosisCodes() []ErrorCode {
	codes := make([]ErrorCode, len(diagnosisCodes))
	copy(codes, diagnosisCodes)
	return codes
}

// IsDiagnosis reports whether code belongs to the closed set of diagnosis codes.
func (c ErrorCode) IsDiagnosis() bool {
	for _, code := range diagnosisCodes {
		if c == code {
			return true
		}
	}
	return false
}
