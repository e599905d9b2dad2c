package codec

// Lead byte upper bounds used by the decoder. Each constant is the first
// byte value that no longer belongs to the class named.
const (
	maxOneByte       byte = 0b1000_0000 // ASCII
	maxContinuation  byte = 0b1100_0000 // 10xxxxxx
	maxTwoByteLead   byte = 0b1110_0000 // 110xxxxx
	maxThreeByteLead byte = 0b1111_0000 // 1110xxxx
	maxFourByteLead  byte = 0b1111_1000 // 11110xxx
)

// Payload masks for lead and continuation bytes.
const (
	continuationMask byte = 0b0011_1111
	twoByteMask      byte = 0b0001_1111
	threeByteMask    byte = 0b0000_1111
	fourByteMask     byte = 0b0000_0111
)

// Scalar ranges used by the encoder. A scalar below the limit fits the
// corresponding length.
const (
	oneByteLimit   rune = 1 << 7
	twoByteLimit   rune = 1 << 11
	threeByteLimit rune = 1 << 16
	fourByteLimit  rune = 1 << 21
)

// MaxScalar is the largest value the four-byte form can carry.
const MaxScalar rune = fourByteLimit - 1

// Lead byte markers and the continuation marker written by the encoder.
const (
	continuationMarker  byte = 0b1000_0000
	twoByteMarker       byte = 0b1100_0000
	threeByteMarker     byte = 0b1110_0000
	fourByteMarker      byte = 0b1111_0000
	lowSixBits          rune = 0b0011_1111
	continuationPayload      = 6
)
