package codec

// Decode converts UTF-8 bytes into Unicode scalar values.
//
// It stops at the first malformed sequence and returns a *DecodeError whose
// Index is the lead byte for MissingStartByte, InvalidStartByte and
// NotEnoughBytes, or the offending byte for InvalidTrailingByte. src is never
// modified. An empty src yields an empty, non-nil result.
func Decode(src []byte) ([]rune, error) {
	result := make([]rune, 0, len(src))
	index := 0
	for index < len(src) {
		r, n, kind, at := decodeRune(src[index:])
		if n == 0 {
			return nil, &DecodeError{Src: src, Index: index + at, Kind: kind}
		}
		result = append(result, r)
		index += n
	}
	return result, nil
}

// DecodeString is Decode for a string. On failure the error's Src holds the
// bytes of s.
func DecodeString(s string) ([]rune, error) {
	return Decode([]byte(s))
}

// SequenceLen returns the length of the sequence started by lead, or 0 if
// lead cannot start a sequence.
func SequenceLen(lead byte) int {
	switch {
	case lead < maxOneByte:
		return 1
	case lead < maxContinuation:
		return 0
	case lead < maxTwoByteLead:
		return 2
	case lead < maxThreeByteLead:
		return 3
	case lead < maxFourByteLead:
		return 4
	default:
		return 0
	}
}

// decodeRune decodes the sequence at the start of src. On failure n is 0 and
// at is the fault position relative to src.
func decodeRune(src []byte) (r rune, n int, kind DecodeErrorKind, at int) {
	lead := src[0]
	switch {
	case lead < maxOneByte:
		return rune(lead), 1, 0, 0
	case lead < maxContinuation:
		return 0, 0, MissingStartByte, 0
	case lead < maxTwoByteLead:
		return decodeMultiByte(src, 2, twoByteMask)
	case lead < maxThreeByteLead:
		return decodeMultiByte(src, 3, threeByteMask)
	case lead < maxFourByteLead:
		return decodeMultiByte(src, 4, fourByteMask)
	default:
		return 0, 0, InvalidStartByte, 0
	}
}

func decodeMultiByte(src []byte, length int, mask byte) (rune, int, DecodeErrorKind, int) {
	if len(src) < length {
		return 0, 0, NotEnoughBytes, 0
	}

	r := rune(src[0] & mask)
	for i := 1; i < length; i++ {
		b := src[i]
		if b < maxOneByte || b >= maxContinuation {
			return 0, 0, InvalidTrailingByte, i
		}
		r = r<<continuationPayload | rune(b&continuationMask)
	}
	return r, length, 0, 0
}
