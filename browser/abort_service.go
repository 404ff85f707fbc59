package browser

import (
	"sync"

	"github.com/vibhorag101/SimpleWebAuthn/errors"
)

// ErrCeremonyReplaced is the abort reason given to a ceremony's signal when a
// newer ceremony takes its place.
var ErrCeremonyReplaced = errors.New(errors.CodeCeremonyAborted, "cancelling existing WebAuthn API call for new one")

// AbortService ensures at most one ceremony is in flight. Starting a new
// ceremony aborts the previous one, which then fails with an AbortError that
// the Classifier reports as CodeCeremonyAborted.
//
// The zero value is ready to use and safe for concurrent use.
type AbortService struct {
	mu         sync.Mutex
	controller *AbortController
}

// CreateNewAbortSignal aborts the current ceremony, if any, and returns the
// signal for the next one.
func (s *AbortService) CreateNewAbortSignal() *AbortSignal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller != nil {
		s.controller.Abort(ErrCeremonyReplaced)
	}

	s.controller = NewAbortController()
	return s.controller.Signal()
}

// Cancel aborts the current ceremony, if any, with reason.
func (s *AbortService) Cancel(reason error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.controller == nil {
		return
	}
	s.controller.Abort(reason)
	s.controller = nil
}
