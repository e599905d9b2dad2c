// Package errors provides structured error types for simple-utf8.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the fault offset, the offending value and an optional
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidTrailingByte).
//		Offset(3).
//		Value(byte(0x41)).
//		Detail("byte 0x41 is not a continuation byte").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingStartByte(0, 0xad)
//	err := errors.InvalidCodePoint(3, 0x200000)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
