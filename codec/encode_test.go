package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/CNife/simple-utf8/codec"
	utf8errors "github.com/CNife/simple-utf8/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		src  []rune
		want []byte
	}{
		{"empty", []rune{}, []byte{}},
		{"nil", nil, []byte{}},
		{"ascii", []rune{'a', 'b', 'c'}, []byte("abc")},
		{"two byte", []rune{0xe9}, []byte{0xc3, 0xa9}},
		{"three byte", []rune{'学', '习'}, []byte{0xe5, 0xad, 0xa6, 0xe4, 0xb9, 0xa0}},
		{"four byte", []rune{0x1f600}, []byte{0xf0, 0x9f, 0x98, 0x80}},
		{"surrogate is encoded", []rune{0xd800}, []byte{0xed, 0xa0, 0x80}},
		{"beyond unicode range", []rune{0x110000}, []byte{0xf4, 0x90, 0x80, 0x80}},
		{"max scalar", []rune{codec.MaxScalar}, []byte{0xf7, 0xbf, 0xbf, 0xbf}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(tt.src)
			if err != nil {
				t.Fatalf("Encode(%U): %v", tt.src, err)
			}
			if got == nil {
				t.Fatal("Encode returned nil slice")
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%U) = % x, want % x", tt.src, got, tt.want)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   []rune
		index int
	}{
		{"first value past maximum", []rune{'a', 'b', 'c', 0x200000}, 3},
		{"leading invalid", []rune{0x200000, 'a'}, 0},
		{"largest rune", []rune{'x', 0x7fffffff}, 1},
		{"negative", []rune{'a', -1}, 1},
		{"first of two faults", []rune{'a', 0x300000, 0x400000}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(tt.src)
			if err == nil {
				t.Fatalf("Encode(%U) = % x, want error", tt.src, got)
			}
			if got != nil {
				t.Errorf("Encode returned partial output % x", got)
			}

			var ee *codec.EncodeError
			if !errors.As(err, &ee) {
				t.Fatalf("error %T is not *EncodeError", err)
			}
			if ee.Index != tt.index {
				t.Errorf("Index = %d, want %d", ee.Index, tt.index)
			}
			if ee.Kind != codec.InvalidCodePoint {
				t.Errorf("Kind = %v, want InvalidCodePoint", ee.Kind)
			}
			if ee.Rune() != tt.src[tt.index] {
				t.Errorf("Rune() = %#x, want %#x", ee.Rune(), tt.src[tt.index])
			}
			if &ee.Src[0] != &tt.src[0] {
				t.Error("Src does not alias the input")
			}
			if !errors.Is(err, codec.ErrInvalidCodePoint) {
				t.Error("errors.Is(err, ErrInvalidCodePoint) = false")
			}
			if errors.Is(err, codec.ErrMissingStartByte) {
				t.Error("encode error matched decode sentinel")
			}
		})
	}
}

func TestEncodeError_Structured(t *testing.T) {
	_, err := codec.Encode([]rune{'a', 'b', 'c', 0x200000})

	var ee *codec.EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("error %T is not *EncodeError", err)
	}

	s := ee.Structured()
	if s.Phase != utf8errors.PhaseEncode || s.Kind != utf8errors.KindInvalidCodePoint {
		t.Errorf("Phase=%v Kind=%v", s.Phase, s.Kind)
	}
	if s.Value != rune(0x200000) {
		t.Errorf("Value = %v, want 0x200000", s.Value)
	}

	want := "[encode] invalid_code_point at offset 3: code point 0x200000 exceeds 0x1fffff"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, &utf8errors.Error{Phase: utf8errors.PhaseEncode, Kind: utf8errors.KindInvalidCodePoint}) {
		t.Error("EncodeError should match structured target")
	}
}

func TestEncodeToString(t *testing.T) {
	got, err := codec.EncodeToString([]rune{'学', '习'})
	if err != nil {
		t.Fatalf("EncodeToString: %v", err)
	}
	if got != "学习" {
		t.Errorf("EncodeToString = %q, want %q", got, "学习")
	}

	if _, err := codec.EncodeToString([]rune{-5}); err == nil {
		t.Error("EncodeToString(-5) should fail")
	}
}

func TestEncodedLen(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{-1, 0},
		{0, 1},
		{0x7f, 1},
		{0x80, 2},
		{0x7ff, 2},
		{0x800, 3},
		{0xffff, 3},
		{0x10000, 4},
		{0x1fffff, 4},
		{0x200000, 0},
	}

	for _, tt := range tests {
		if got := codec.EncodedLen(tt.r); got != tt.want {
			t.Errorf("EncodedLen(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestEncode_Boundaries(t *testing.T) {
	tests := []struct {
		r    rune
		want []byte
	}{
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0xc2, 0x80}},
		{0x7ff, []byte{0xdf, 0xbf}},
		{0x800, []byte{0xe0, 0xa0, 0x80}},
		{0xffff, []byte{0xef, 0xbf, 0xbf}},
		{0x10000, []byte{0xf0, 0x90, 0x80, 0x80}},
		{0x1fffff, []byte{0xf7, 0xbf, 0xbf, 0xbf}},
	}

	for _, tt := range tests {
		got, err := codec.Encode([]rune{tt.r})
		if err != nil {
			t.Fatalf("Encode(%#x): %v", tt.r, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Encode(%#x) = % x, want % x", tt.r, got, tt.want)
		}

		back, err := codec.Decode(got)
		if err != nil {
			t.Fatalf("Decode(% x): %v", got, err)
		}
		if diff := cmp.Diff([]rune{tt.r}, back); diff != "" {
			t.Errorf("round trip of %#x (-want +got):\n%s", tt.r, diff)
		}
	}
}

func TestEncodeErrorKind_String(t *testing.T) {
	if got := codec.InvalidCodePoint.String(); got != "InvalidCodePoint" {
		t.Errorf("String() = %q", got)
	}
}
