package cfg

import (
	"fmt"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// The three parse sentinels are the complete taxonomy of line-level
// failures; every error returned by [ParseLine] wraps exactly one of them.
var (
	// ErrInvalidIdentifier indicates a command/key position that did not
	// start with a valid identifier character (letter, '_', or '@').
	ErrInvalidIdentifier = NewError("invalid identifier")

	// ErrInvalidString indicates an argument position that required a
	// quoted string and found none, or found one missing its closing quote.
	ErrInvalidString = NewError("invalid string literal")

	// ErrUnexpectedEOL indicates trailing content after a recognized
	// statement shape, or a two-argument line whose command is not "bind".
	ErrUnexpectedEOL = NewError("unexpected end of line")

	// ErrFilterCompile indicates a statement filter expression that failed
	// to compile.
	ErrFilterCompile = NewError("filter compilation failed")

	// ErrFilterEval indicates a statement filter expression that failed
	// to evaluate.
	ErrFilterEval = NewError("filter evaluation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same message. This lets
// errors.Is match the sentinel values even through copies produced by
// [Error.With] and [Error.Wrap], which preserve the message but not the
// sentinel's address.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LineError records a parse failure at a specific line of a statement
// source. Index is the zero-based line index; callers presenting the error
// to users should report Index+1.
type LineError struct {
	Index int
	Err   error
}

// Error implements the error interface, reporting the 1-based line number.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Index+1, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *LineError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer for structured logging.
func (e *LineError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", e.Index+1),
		slog.Any("cause", e.Err),
	)
}
