package simpleutf8

import "github.com/CNife/simple-utf8/codec"

// Decoder converts UTF-8 bytes into scalar values.
type Decoder interface {
	Decode(src []byte) ([]rune, error)
}

// Encoder converts scalar values into UTF-8 bytes.
type Encoder interface {
	Encode(src []rune) ([]byte, error)
}

// Codec implements Decoder and Encoder with package codec.
type Codec struct{}

// Decode calls codec.Decode.
func (Codec) Decode(src []byte) ([]rune, error) {
	return codec.Decode(src)
}

// Encode calls codec.Encode.
func (Codec) Encode(src []rune) ([]byte, error) {
	return codec.Encode(src)
}

var (
	_ Decoder = Codec{}
	_ Encoder = Codec{}
)
