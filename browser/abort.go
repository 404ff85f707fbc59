package browser

import (
	"context"

	"github.com/vibhorag101/SimpleWebAuthn/errors"
)

// ErrAborted is the abort reason used when Abort is called with a nil reason.
var ErrAborted = errors.New(errors.CodeCeremonyAborted, "the operation was aborted")

// AbortSignal reports cancellation of a ceremony. It is the only Signal
// treated as an abort signal.
//
// Signals that can fire come from NewAbortController. The zero value is a
// signal that is never aborted: Done returns a nil channel.
type AbortSignal struct {
	ctx context.Context
}

// Done returns a channel that is closed once the signal is aborted.
func (s *AbortSignal) Done() <-chan struct{} {
	if s == nil || s.ctx == nil {
		return nil
	}
	return s.ctx.Done()
}

// Aborted reports whether the signal has been aborted.
func (s *AbortSignal) Aborted() bool {
	if s == nil || s.ctx == nil {
		return false
	}
	return s.ctx.Err() != nil
}

// Reason returns the abort reason, or nil if the signal is not aborted.
func (s *AbortSignal) Reason() error {
	if !s.Aborted() {
		return nil
	}
	return context.Cause(s.ctx)
}

// AbortController owns an AbortSignal and can abort it.
type AbortController struct {
	signal *AbortSignal
	cancel context.CancelCauseFunc
}

// NewAbortController returns a controller with a fresh, unaborted signal.
func NewAbortController() *AbortController {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &AbortController{
		signal: &AbortSignal{ctx: ctx},
		cancel: cancel,
	}
}

// Signal returns the controller's signal.
func (c *AbortController) Signal() *AbortSignal {
	return c.signal
}

// Abort aborts the signal. Only the first call has an effect.
// A nil reason is recorded as ErrAborted.
func (c *AbortController) Abort(reason error) {
	if reason == nil {
		reason = ErrAborted
	}
	c.cancel(reason)
}
