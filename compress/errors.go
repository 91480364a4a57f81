package compress

import "fmt"

// Code is a stable numeric result code. The values are part of the
// external boundary contract and are never renumbered.
type Code int32

const (
	// CodeOK indicates success; the written byte count is valid.
	CodeOK Code = 0

	// CodeBufferTooSmall indicates the output buffer cannot hold the
	// result. The error carries the required capacity so callers can
	// retry with a larger buffer.
	CodeBufferTooSmall Code = -1

	// CodeAlgoNotFound indicates an unregistered algorithm tag.
	CodeAlgoNotFound Code = -2

	// CodeInvalidArgument indicates a malformed call, such as a nil
	// buffer where one is required.
	CodeInvalidArgument Code = -3

	// CodeInternal indicates corrupt input or a codec library failure.
	// Enlarging the output buffer will not help.
	CodeInternal Code = -50

	// CodeFaultContained indicates a panic inside the gateway or a
	// codec was caught at the boundary instead of unwinding into the
	// caller.
	CodeFaultContained Code = -99
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeBufferTooSmall:
		return "BufferTooSmall"
	case CodeAlgoNotFound:
		return "AlgoNotFound"
	case CodeInvalidArgument:
		return "InvalidArgument"
	case CodeInternal:
		return "Internal"
	case CodeFaultContained:
		return "FaultContained"
	default:
		return "Unknown"
	}
}

// Error is the structured failure type returned by codecs and the
// registry. Code classifies the failure; Needed carries the required
// output capacity for CodeBufferTooSmall and is zero otherwise.
type Error struct {
	Code   Code
	Needed int
	msg    string
	cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Code == CodeBufferTooSmall:
		return fmt.Sprintf("buffer too small, need at least %d bytes", e.Needed)
	case e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	default:
		return e.msg
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// ErrShortBuffer returns a capacity failure carrying the required
// output size. Callers retry with a buffer of at least needed bytes.
func ErrShortBuffer(needed int) *Error {
	return &Error{Code: CodeBufferTooSmall, Needed: needed}
}

// ErrInternal wraps a codec library failure. The wrapped error remains
// reachable through errors.Is/As for diagnostics, but only the code is
// authoritative at the boundary.
func ErrInternal(msg string, cause error) *Error {
	return &Error{Code: CodeInternal, msg: msg, cause: cause}
}

func errAlgoNotFound(tag uint8) *Error {
	return &Error{Code: CodeAlgoNotFound, msg: fmt.Sprintf("algorithm not found: %d", tag)}
}
