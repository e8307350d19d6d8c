// =============================================================================
// Sheet Converter - Error Kinds
// =============================================================================
//
// Every failure that leaves a pipeline is an *Error carrying one of five kinds.
// Callers match kinds with errors.Is against the sentinels below:
//
//   errors.Is(err, types.ErrInputNotFound)
//   errors.Is(err, types.ErrUnsupportedFormat)
//
// The wrapped cause stays reachable with errors.As / errors.Unwrap.
//
// =============================================================================

package types

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors that are not *Error.
	KindUnknown Kind = iota

	// KindInputNotFound: the input path does not exist (checked before parsing).
	KindInputNotFound

	// KindParse: malformed delimited content or an unreadable workbook.
	KindParse

	// KindUnsupportedFormat: the format is unknown or not offered by the pipeline.
	KindUnsupportedFormat

	// KindSerialization: an encoder rejected the in-memory value tree.
	KindSerialization

	// KindIO: directory creation or file write failure.
	KindIO
)

// Sentinels for errors.Is.
var (
	ErrInputNotFound     = errors.New("input not found")
	ErrParse             = errors.New("parse error")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrSerialization     = errors.New("serialization error")
	ErrIO                = errors.New("i/o error")
)

// sentinel maps a kind to its errors.Is target.
func (k Kind) sentinel() error {
	switch k {
	case KindInputNotFound:
		return ErrInputNotFound
	case KindParse:
		return ErrParse
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindSerialization:
		return ErrSerialization
	case KindIO:
		return ErrIO
	default:
		return nil
	}
}

// String returns the sentinel message for the kind.
func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown error"
}

// Error is a classified conversion failure.
type Error struct {
	// Kind is the failure class.
	Kind Kind

	// Op describes what was being done, e.g. "reading CSV".
	Op string

	// Path is the file or directory involved, if any.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
// Format: "<op> <path>: <cause>" with empty parts omitted.
func (e *Error) Error() string {
	msg := e.Op
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewError builds a classified error.
func NewError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
