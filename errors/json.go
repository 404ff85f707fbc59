package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable form of an error.
//
// The wrapped error chain is excluded: the raised ceremony error may carry
// authenticator or platform details that should not reach a client.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For WebAuthnError instances, extracts code, message, classification, and context.
// For other errors, uses CodeUnknown, ClassificationPermanent, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var waErr WebAuthnError
	if As(err, &waErr) {
		message = waErr.Message()
		context = waErr.Context()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler so a WebAuthnError can be embedded
// directly in a response struct.
//
// Example:
//
//	err := errors.New(errors.CodeOpaqueOrigin, "the origin is an opaque origin")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"OPAQUE_ORIGIN","message":"the origin is an opaque origin","classification":"PERMANENT"}
func (e *webAuthnError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		// Only reachable with unsupported values in the context map.
		return nil, &webAuthnError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
