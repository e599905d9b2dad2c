// Package codec converts between UTF-8 byte sequences and Unicode scalar
// values.
//
// Both directions are pure functions over an in-memory buffer. They either
// succeed completely or stop at the first malformed element and return an
// error that points into the caller's input.
//
// # Decoding
//
//	scalars, err := codec.Decode([]byte("学习"))
//	if err != nil {
//	    var de *codec.DecodeError
//	    if errors.As(err, &de) {
//	        log.Printf("bad byte 0x%02x at %d: %s", de.Byte(), de.Index, de.Kind)
//	    }
//	}
//
// The decoder classifies each lead byte by its high bits:
//
//	0xxxxxxx                               1 byte
//	10xxxxxx                               MissingStartByte
//	110xxxxx 10xxxxxx                      2 bytes
//	1110xxxx 10xxxxxx 10xxxxxx             3 bytes
//	11110xxx 10xxxxxx 10xxxxxx 10xxxxxx    4 bytes
//	11111xxx                               InvalidStartByte
//
// A sequence that runs past the end of the input fails with NotEnoughBytes
// at its lead byte. A byte inside a sequence that is not 10xxxxxx fails with
// InvalidTrailingByte at that byte. Overlong forms and surrogate code points
// are structurally valid and are decoded as-is.
//
// # Encoding
//
//	data, err := codec.Encode([]rune{'a', 'b', 'c'})
//
// Scalars below 0x80, 0x800, 0x10000 and 0x200000 use 1, 2, 3 and 4 bytes.
// Anything at or above 0x200000, and any negative rune, fails with
// InvalidCodePoint at its index.
//
// # Errors
//
// DecodeError and EncodeError reference the original input without copying
// it. They match the package sentinels and the structured errors of package
// github.com/CNife/simple-utf8/errors:
//
//	errors.Is(err, codec.ErrNotEnoughBytes)
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package codec
