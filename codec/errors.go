package codec

import (
	"github.com/CNife/simple-utf8/errors"
)

// DecodeErrorKind classifies a decoding fault.
type DecodeErrorKind int

const (
	// MissingStartByte means a continuation byte appeared where a lead byte was expected.
	MissingStartByte DecodeErrorKind = iota
	// InvalidStartByte means the byte matches 11111xxx and cannot start any sequence.
	InvalidStartByte
	// NotEnoughBytes means the input ends before the sequence started by the lead byte does.
	NotEnoughBytes
	// InvalidTrailingByte means a byte inside a sequence is not a continuation byte.
	InvalidTrailingByte
)

func (k DecodeErrorKind) String() string {
	switch k {
	case MissingStartByte:
		return "MissingStartByte"
	case InvalidStartByte:
		return "InvalidStartByte"
	case NotEnoughBytes:
		return "NotEnoughBytes"
	case InvalidTrailingByte:
		return "InvalidTrailingByte"
	default:
		return "DecodeErrorKind(?)"
	}
}

func (k DecodeErrorKind) errorKind() errors.Kind {
	switch k {
	case MissingStartByte:
		return errors.KindMissingStartByte
	case InvalidStartByte:
		return errors.KindInvalidStartByte
	case NotEnoughBytes:
		return errors.KindNotEnoughBytes
	default:
		return errors.KindInvalidTrailingByte
	}
}

// EncodeErrorKind classifies an encoding fault.
type EncodeErrorKind int

const (
	// InvalidCodePoint means the scalar is negative or does not fit in four bytes.
	InvalidCodePoint EncodeErrorKind = iota
)

func (k EncodeErrorKind) String() string {
	if k == InvalidCodePoint {
		return "InvalidCodePoint"
	}
	return "EncodeErrorKind(?)"
}

// Sentinels for errors.Is. A DecodeError or EncodeError matches the sentinel
// of its kind.
var (
	ErrMissingStartByte    = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMissingStartByte, Offset: errors.NoOffset}
	ErrInvalidStartByte    = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidStartByte, Offset: errors.NoOffset}
	ErrNotEnoughBytes      = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindNotEnoughBytes, Offset: errors.NoOffset}
	ErrInvalidTrailingByte = &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidTrailingByte, Offset: errors.NoOffset}
	ErrInvalidCodePoint    = &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindInvalidCodePoint, Offset: errors.NoOffset}
)

// DecodeError reports the first malformed byte found by Decode.
//
// Src is the caller's input, not a copy.
type DecodeError struct {
	Src   []byte
	Index int
	Kind  DecodeErrorKind
}

// Byte returns the byte at Index.
func (e *DecodeError) Byte() byte {
	return e.Src[e.Index]
}

// Structured returns the error in the form of package errors.
func (e *DecodeError) Structured() *errors.Error {
	b := e.Byte()
	switch e.Kind {
	case MissingStartByte:
		return errors.MissingStartByte(e.Index, b)
	case InvalidStartByte:
		return errors.InvalidStartByte(e.Index, b)
	case NotEnoughBytes:
		need := SequenceLen(b)
		return errors.NotEnoughBytes(e.Index, b, need, len(e.Src)-e.Index)
	default:
		return errors.InvalidTrailingByte(e.Index, b)
	}
}

func (e *DecodeError) Error() string {
	return e.Structured().Error()
}

// Is matches *errors.Error targets with the same phase and kind.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*errors.Error)
	return ok && t.Phase == errors.PhaseDecode && t.Kind == e.Kind.errorKind()
}

// EncodeError reports the first scalar Encode could not represent.
//
// Src is the caller's input, not a copy.
type EncodeError struct {
	Src   []rune
	Index int
	Kind  EncodeErrorKind
}

// Rune returns the scalar at Index.
func (e *EncodeError) Rune() rune {
	return e.Src[e.Index]
}

// Structured returns the error in the form of package errors.
func (e *EncodeError) Structured() *errors.Error {
	return errors.InvalidCodePoint(e.Index, e.Rune())
}

func (e *EncodeError) Error() string {
	return e.Structured().Error()
}

// Is matches *errors.Error targets with the same phase and kind.
func (e *EncodeError) Is(target error) bool {
	t, ok := target.(*errors.Error)
	return ok && t.Phase == errors.PhaseEncode && t.Kind == errors.KindInvalidCodePoint
}
