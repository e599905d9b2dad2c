package codec

// Encode converts Unicode scalar values into UTF-8 bytes.
//
// A scalar that is negative or at least 0x200000 aborts the call with a
// *EncodeError pointing at its index; no partial output is returned. Surrogate
// code points are encoded like any other value. An empty src yields an empty,
// non-nil result.
func Encode(src []rune) ([]byte, error) {
	result := make([]byte, 0, len(src))
	for index, r := range src {
		n := EncodedLen(r)
		if n == 0 {
			return nil, &EncodeError{Src: src, Index: index, Kind: InvalidCodePoint}
		}
		result = appendRune(result, r, n)
	}
	return result, nil
}

// EncodeToString is Encode returning a string.
func EncodeToString(src []rune) (string, error) {
	b, err := Encode(src)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodedLen returns the number of bytes Encode writes for r, or 0 if r
// cannot be encoded.
func EncodedLen(r rune) int {
	switch {
	case r < 0:
		return 0
	case r < oneByteLimit:
		return 1
	case r < twoByteLimit:
		return 2
	case r < threeByteLimit:
		return 3
	case r < fourByteLimit:
		return 4
	default:
		return 0
	}
}

func appendRune(dst []byte, r rune, n int) []byte {
	switch n {
	case 1:
		return append(dst, byte(r))
	case 2:
		return appendMultiByte(dst, r, 2, twoByteMarker)
	case 3:
		return appendMultiByte(dst, r, 3, threeByteMarker)
	default:
		return appendMultiByte(dst, r, 4, fourByteMarker)
	}
}

// appendMultiByte splits off continuation bytes from the low end of r, then
// writes the lead byte followed by the continuations in reverse order.
func appendMultiByte(dst []byte, r rune, n int, marker byte) []byte {
	var trail [3]byte
	for i := n - 2; i >= 0; i-- {
		r, trail[i] = splitLowSix(r)
	}
	dst = append(dst, byte(r)|marker)
	return append(dst, trail[:n-1]...)
}

func splitLowSix(r rune) (rune, byte) {
	return r >> continuationPayload, byte(r&lowSixBits) | continuationMarker
}
