package codec_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/CNife/simple-utf8/codec"
	utf8errors "github.com/CNife/simple-utf8/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []rune
	}{
		{"empty", []byte{}, []rune{}},
		{"nil", nil, []rune{}},
		{"ascii", []byte("abc"), []rune{'a', 'b', 'c'}},
		{"nul", []byte{0x00}, []rune{0}},
		{"two byte", []byte{0xc3, 0xa9}, []rune{0xe9}},
		{"three byte", []byte{0xe5, 0xad, 0xa6, 0xe4, 0xb9, 0xa0}, []rune{'学', '习'}},
		{"four byte", []byte{0xf0, 0x9f, 0x98, 0x80}, []rune{0x1f600}},
		{"mixed", []byte("a\u00e9\u5b66\U0001f600z"), []rune{'a', 0xe9, 0x5b66, 0x1f600, 'z'}},
		{"highest four byte form", []byte{0xf7, 0xbf, 0xbf, 0xbf}, []rune{0x1fffff}},
		{"overlong is accepted", []byte{0xc0, 0x80}, []rune{0}},
		{"overlong slash", []byte{0xe0, 0x80, 0xaf}, []rune{'/'}},
		{"surrogate is accepted", []byte{0xed, 0xa0, 0x80}, []rune{0xd800}},
		{"continuation 0xbf is valid", []byte{0xdf, 0xbf}, []rune{0x7ff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(tt.src)
			if err != nil {
				t.Fatalf("Decode(% x): %v", tt.src, err)
			}
			if got == nil {
				t.Fatal("Decode returned nil slice")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(% x) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestDecode_DoesNotModifyInput(t *testing.T) {
	src := []byte("h\u00e9llo \u4e16\u754c")
	orig := append([]byte(nil), src...)

	if _, err := codec.Decode(src); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(orig, src); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		index    int
		kind     codec.DecodeErrorKind
		sentinel error
	}{
		{
			name:     "lone continuation from truncated 学习",
			src:      []byte{0xad, 0xa6, 0xe4, 0xb9, 0xa0},
			index:    0,
			kind:     codec.MissingStartByte,
			sentinel: codec.ErrMissingStartByte,
		},
		{
			name:     "continuation after ascii",
			src:      []byte{'a', 'b', 0x80},
			index:    2,
			kind:     codec.MissingStartByte,
			sentinel: codec.ErrMissingStartByte,
		},
		{
			name:     "extra continuation after complete sequence",
			src:      []byte{0xc3, 0xa9, 0xa9},
			index:    2,
			kind:     codec.MissingStartByte,
			sentinel: codec.ErrMissingStartByte,
		},
		{
			name:     "0xf8 lead",
			src:      []byte{0xf8, 0x80, 0x80, 0x80, 0x80},
			index:    0,
			kind:     codec.InvalidStartByte,
			sentinel: codec.ErrInvalidStartByte,
		},
		{
			name:     "0xff lead after ascii",
			src:      []byte{'x', 0xff},
			index:    1,
			kind:     codec.InvalidStartByte,
			sentinel: codec.ErrInvalidStartByte,
		},
		{
			name:     "three byte lead alone",
			src:      []byte{0xe0},
			index:    0,
			kind:     codec.NotEnoughBytes,
			sentinel: codec.ErrNotEnoughBytes,
		},
		{
			name:     "three byte lead with one trailing byte",
			src:      []byte{0xe0, 0x80},
			index:    0,
			kind:     codec.NotEnoughBytes,
			sentinel: codec.ErrNotEnoughBytes,
		},
		{
			name:     "truncation wins over bad trailing byte",
			src:      []byte{0xe0, 0x41},
			index:    0,
			kind:     codec.NotEnoughBytes,
			sentinel: codec.ErrNotEnoughBytes,
		},
		{
			name:     "truncated four byte sequence at end",
			src:      []byte{'o', 'k', 0xf0, 0x9f, 0x98},
			index:    2,
			kind:     codec.NotEnoughBytes,
			sentinel: codec.ErrNotEnoughBytes,
		},
		{
			name:     "ascii as trailing byte",
			src:      []byte{0xe5, 0x41, 0xa6},
			index:    1,
			kind:     codec.InvalidTrailingByte,
			sentinel: codec.ErrInvalidTrailingByte,
		},
		{
			name:     "lead byte as trailing byte",
			src:      []byte{0xe5, 0xad, 0xc0},
			index:    2,
			kind:     codec.InvalidTrailingByte,
			sentinel: codec.ErrInvalidTrailingByte,
		},
		{
			name:     "bad last byte of four byte sequence",
			src:      []byte{'a', 0xf0, 0x9f, 0x98, 0x20},
			index:    4,
			kind:     codec.InvalidTrailingByte,
			sentinel: codec.ErrInvalidTrailingByte,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decode(tt.src)
			if err == nil {
				t.Fatalf("Decode(% x) = %v, want error", tt.src, got)
			}
			if got != nil {
				t.Errorf("Decode returned partial output %v", got)
			}

			var de *codec.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not *DecodeError", err)
			}
			if de.Index != tt.index {
				t.Errorf("Index = %d, want %d", de.Index, tt.index)
			}
			if de.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", de.Kind, tt.kind)
			}
			if de.Byte() != tt.src[tt.index] {
				t.Errorf("Byte() = 0x%02x, want 0x%02x", de.Byte(), tt.src[tt.index])
			}
			if &de.Src[0] != &tt.src[0] {
				t.Error("Src does not alias the input")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if errors.Is(err, codec.ErrInvalidCodePoint) {
				t.Error("decode error matched encode sentinel")
			}
		})
	}
}

func TestDecodeError_Structured(t *testing.T) {
	_, err := codec.Decode([]byte{'a', 0xe0, 0x80})

	var de *codec.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %T is not *DecodeError", err)
	}

	s := de.Structured()
	if s.Phase != utf8errors.PhaseDecode || s.Kind != utf8errors.KindNotEnoughBytes {
		t.Errorf("Phase=%v Kind=%v", s.Phase, s.Kind)
	}
	if s.Offset != 1 {
		t.Errorf("Offset = %d, want 1", s.Offset)
	}
	if s.Value != byte(0xe0) {
		t.Errorf("Value = %v, want 0xe0", s.Value)
	}

	want := "[decode] not_enough_bytes at offset 1: lead byte 0xe0 needs 3 bytes, 2 available"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDecodeString(t *testing.T) {
	got, err := codec.DecodeString("学习")
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if diff := cmp.Diff([]rune{'学', '习'}, got); diff != "" {
		t.Errorf("DecodeString mismatch (-want +got):\n%s", diff)
	}

	_, err = codec.DecodeString("学习"[1:])
	var de *codec.DecodeError
	if !errors.As(err, &de) || de.Index != 0 || de.Kind != codec.MissingStartByte {
		t.Errorf("DecodeString(truncated) error = %v", err)
	}
}

func TestSequenceLen(t *testing.T) {
	tests := []struct {
		lead byte
		want int
	}{
		{0x00, 1},
		{0x7f, 1},
		{0x80, 0},
		{0xbf, 0},
		{0xc0, 2},
		{0xdf, 2},
		{0xe0, 3},
		{0xef, 3},
		{0xf0, 4},
		{0xf7, 4},
		{0xf8, 0},
		{0xff, 0},
	}

	for _, tt := range tests {
		if got := codec.SequenceLen(tt.lead); got != tt.want {
			t.Errorf("SequenceLen(0x%02x) = %d, want %d", tt.lead, got, tt.want)
		}
	}
}

func TestDecodeErrorKind_String(t *testing.T) {
	tests := map[codec.DecodeErrorKind]string{
		codec.MissingStartByte:    "MissingStartByte",
		codec.InvalidStartByte:    "InvalidStartByte",
		codec.NotEnoughBytes:      "NotEnoughBytes",
		codec.InvalidTrailingByte: "InvalidTrailingByte",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
