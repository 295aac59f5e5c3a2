package prompt

import (
	"errors"
	"fmt"
)

// ErrNoParser reports a prompt displayed or evaluated before a parser was
// set. This is a configuration mistake, never retried.
var ErrNoParser = errors.New("prompt: no parser set")

// Kind classifies the input errors Display treats as retryable.
type Kind string

const (
	// KindMalformed marks text the parser could not interpret at all.
	KindMalformed Kind = "malformed"
	// KindOutOfRange marks a parsed value outside its permitted range.
	KindOutOfRange Kind = "out-of-range"
	// KindWrongLength marks text with an unacceptable length.
	KindWrongLength Kind = "wrong-length"
	// KindInvalidArgument marks a value rejected for a reason with no more
	// specific kind.
	KindInvalidArgument Kind = "invalid-argument"
	// KindPathTooLong marks a filesystem path exceeding system limits.
	KindPathTooLong Kind = "path-too-long"
	// KindNotSupported marks a value the current platform cannot accept.
	KindNotSupported Kind = "not-supported"
	// KindNotImplemented marks a value routed at functionality that is not
	// available yet.
	KindNotImplemented Kind = "not-implemented"
	// KindRejected is reserved for custom validators that want a retry
	// without claiming one of the narrower kinds.
	KindRejected Kind = "rejected"
)

// InputError describes input the user can correct by retyping. Display
// catches these, writes the message through the invalid-input template, and
// asks again; any other error propagates out of Display untouched.
//
// Message text is shown to the user verbatim, so constructors keep it free of
// package prefixes and wrapped-cause noise.
type InputError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the user-facing message.
func (e *InputError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap exposes the underlying cause, if any, to errors.Is and errors.As.
func (e *InputError) Unwrap() error { return e.Err }

// NewInputError builds a retryable error of the given kind.
func NewInputError(kind Kind, msg string) *InputError {
	return &InputError{Kind: kind, Message: msg}
}

// NewInputErrorf builds a retryable error with a formatted message.
func NewInputErrorf(kind Kind, format string, args ...any) *InputError {
	return &InputError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapInput attaches a kind and user-facing message to an underlying cause.
func WrapInput(kind Kind, msg string, err error) *InputError {
	return &InputError{Kind: kind, Message: msg, Err: err}
}

// Reject builds the KindRejected error custom validators return to trigger a
// retry with msg shown to the user.
func Reject(msg string) *InputError {
	return &InputError{Kind: KindRejected, Message: msg}
}

// Rejectf is Reject with a formatted message.
func Rejectf(format string, args ...any) *InputError {
	return &InputError{Kind: KindRejected, Message: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is, or wraps, an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// KindOf extracts the kind from err when it is, or wraps, an *InputError.
func KindOf(err error) (Kind, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Kind, true
	}
	return "", false
}
