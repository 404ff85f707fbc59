// Package browser diagnoses failed WebAuthn authentication ceremonies.
//
// A ceremony started with navigator.credentials.get() fails with a
// DOMException whose name alone is ambiguous: a NotAllowedError may mean the
// user dismissed the prompt, the page runs in an opaque origin, or the
// environment lacks WebAuthn entirely. The Classifier combines the raised
// error's identity with the ceremony's options and a read-only view of the
// environment to pick one of the diagnosis codes in the errors package.
//
// When no rule applies, the raised error is returned unchanged. The
// classifier never guesses.
//
// # Usage
//
//	classifier := browser.NewClassifier(env, browser.WithLogger(logger))
//
//	diagnosed, err := classifier.IdentifyAuthenticationError(raised, options)
//	if err != nil {
//	    // options.PublicKey was nil: caller bug
//	    return err
//	}
//	switch errors.GetCode(diagnosed) {
//	case errors.CodeUserCancelledOperation:
//	    offerRetry()
//	default:
//	    showGenericFailure(diagnosed)
//	}
//
// The rules follow the error-handling steps of the WebAuthn Level 2
// "[[DiscoverFromExternalSource]]" algorithm for assertions.
package browser
