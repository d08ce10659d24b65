package services

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a service failure so the transport layer can map it to an
// HTTP status without inspecting message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindPermissionDenied
	KindNotFound
	KindInvalidState
	KindFailedPrecondition
)

// Error is the failure type every ledger operation returns. Business-rule
// failures carry no cause; internal failures wrap the store error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func notFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func invalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Msg: fmt.Sprintf(format, args...)}
}

func failedPrecondition(format string, args ...any) *Error {
	return &Error{Kind: KindFailedPrecondition, Msg: fmt.Sprintf(format, args...)}
}

func internal(op string, cause error) *Error {
	return &Error{Kind: KindInternal, Msg: op, Err: errors.Wrap(cause, op)}
}

// KindOf returns the kind of err, or KindInternal when err did not originate
// from a service operation.
func KindOf(err error) Kind {
	var se *Error
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// Message returns the human-readable message for err. Internal causes are not
// exposed to callers.
func Message(err error) string {
	var se *Error
	if stderrors.As(err, &se) && se.Kind != KindInternal {
		return se.Msg
	}
	return "internal error"
}
