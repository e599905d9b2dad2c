package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // bytes to scalars
	PhaseEncode Phase = "encode" // scalars to bytes
	PhaseLoad   Phase = "load"   // fixture loading
	PhaseVerify Phase = "verify" // fixture cross-validation
	PhaseConfig Phase = "config" // configuration handling
)

// Kind categorizes the error
type Kind string

const (
	KindMissingStartByte    Kind = "missing_start_byte"
	KindInvalidStartByte    Kind = "invalid_start_byte"
	KindNotEnoughBytes      Kind = "not_enough_bytes"
	KindInvalidTrailingByte Kind = "invalid_trailing_byte"
	KindInvalidCodePoint    Kind = "invalid_code_point"
	KindInvalidFixture      Kind = "invalid_fixture"
	KindMismatch            Kind = "mismatch"
	KindInvalidInput        Kind = "invalid_input"
)

// NoOffset marks an error that is not tied to a position in its input.
const NoOffset = -1

// Error is the structured error type used throughout simple-utf8
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Source string
	Detail string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
	}

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.Itoa(e.Offset))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the zero-based fault position
func (b *Builder) Offset(offset int) *Builder {
	b.err.Offset = offset
	return b
}

// Source names the input the error refers to, such as a fixture file
func (b *Builder) Source(name string) *Builder {
	b.err.Source = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingStartByte creates an error for a continuation byte found where a
// lead byte was expected
func MissingStartByte(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMissingStartByte,
		Offset: offset,
		Value:  b,
		Detail: fmt.Sprintf("continuation byte 0x%02x has no lead byte", b),
	}
}

// InvalidStartByte creates an error for a byte that can never start a sequence
func InvalidStartByte(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidStartByte,
		Offset: offset,
		Value:  b,
		Detail: fmt.Sprintf("byte 0x%02x is not a valid lead byte", b),
	}
}

// NotEnoughBytes creates an error for a sequence cut short by the end of input
func NotEnoughBytes(offset int, lead byte, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindNotEnoughBytes,
		Offset: offset,
		Value:  lead,
		Detail: fmt.Sprintf("lead byte 0x%02x needs %d bytes, %d available", lead, need, have),
	}
}

// InvalidTrailingByte creates an error for a non-continuation byte inside a sequence
func InvalidTrailingByte(offset int, b byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidTrailingByte,
		Offset: offset,
		Value:  b,
		Detail: fmt.Sprintf("byte 0x%02x is not a continuation byte", b),
	}
}

// InvalidCodePoint creates an error for a scalar outside the encodable range
func InvalidCodePoint(offset int, r rune) *Error {
	detail := fmt.Sprintf("code point 0x%x exceeds 0x1fffff", r)
	if r < 0 {
		detail = fmt.Sprintf("negative code point %d", r)
	}
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidCodePoint,
		Offset: offset,
		Value:  r,
		Detail: detail,
	}
}

// InvalidFixture creates an error for a fixture file that cannot be used
func InvalidFixture(source string, cause error, detail string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidFixture,
		Source: source,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

// Mismatch creates an error for a codec result that disagrees with the
// expected value at offset
func Mismatch(source string, offset int, detail string) *Error {
	return &Error{
		Phase:  PhaseVerify,
		Kind:   KindMismatch,
		Source: source,
		Offset: offset,
		Detail: detail,
	}
}

// InvalidInput creates an error for malformed user input
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
