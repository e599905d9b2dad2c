package codec_test

import (
	"errors"
	"fmt"

	"github.com/CNife/simple-utf8/codec"
)

func ExampleDecode() {
	scalars, err := codec.Decode([]byte{0xe5, 0xad, 0xa6, 0xe4, 0xb9, 0xa0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%U\n", scalars)
	// Output: [U+5B66 U+4E60]
}

func ExampleEncode() {
	data, err := codec.Encode([]rune{'a', 0xe9, 0x1f600})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% x\n", data)
	// Output: 61 c3 a9 f0 9f 98 80
}

func ExampleDecodeError() {
	_, err := codec.Decode([]byte{0xad, 0xa6, 0xe4, 0xb9, 0xa0})

	var de *codec.DecodeError
	if errors.As(err, &de) {
		fmt.Println(de.Index, de.Kind)
	}
	fmt.Println(err)
	// Output:
	// 0 MissingStartByte
	// [decode] missing_start_byte at offset 0: continuation byte 0xad has no lead byte
}
