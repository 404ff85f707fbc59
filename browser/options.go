package browser

import "time"

// UserVerificationRequirement is the relying party's user verification preference.
type UserVerificationRequirement string

const (
	// UserVerificationRequired fails the ceremony unless the user is verified.
	UserVerificationRequired UserVerificationRequirement = "required"

	// UserVerificationPreferred asks for verification when the authenticator supports it.
	UserVerificationPreferred UserVerificationRequirement = "preferred"

	// UserVerificationDiscouraged asks the authenticator to skip verification.
	UserVerificationDiscouraged UserVerificationRequirement = "discouraged"
)

// PublicKeyCredentialDescriptor identifies a credential the authenticator may use.
type PublicKeyCredentialDescriptor struct {
	Type       string
	ID         []byte
	Transports []string
}

// PublicKeyCredentialRequestOptions is the publicKey member of the options
// passed to the authentication ceremony.
type PublicKeyCredentialRequestOptions struct {
	Challenge        []byte
	Timeout          time.Duration
	RPID             string
	AllowCredentials []PublicKeyCredentialDescriptor
	UserVerification UserVerificationRequirement
}

// AuthenticationOptions are the options an authentication ceremony was started with.
type AuthenticationOptions struct {
	// PublicKey is required. A nil PublicKey is a caller error.
	PublicKey *PublicKeyCredentialRequestOptions

	// Signal is the optional cancellation handle. Only an *AbortSignal counts
	// as an abort signal when diagnosing an AbortError.
	Signal Signal
}

// Signal is any cancellation handle that may accompany a ceremony.
// context.Context satisfies it.
type Signal interface {
	Done() <-chan struct{}
}
