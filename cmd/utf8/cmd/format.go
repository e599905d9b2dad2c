package cmd

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/CNife/simple-utf8/codec"
	"github.com/CNife/simple-utf8/config"
	"github.com/CNife/simple-utf8/errors"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func (a *app) render(s lipgloss.Style, text string) string {
	if !a.colored {
		return text
	}
	return s.Render(text)
}

// byteTokens renders each byte in the given format.
func byteTokens(b []byte, format string) []string {
	tokens := make([]string, len(b))
	for i, v := range b {
		switch format {
		case config.ByteFormatDec:
			tokens[i] = strconv.Itoa(int(v))
		case config.ByteFormatBin:
			tokens[i] = fmt.Sprintf("%08b", v)
		default:
			tokens[i] = fmt.Sprintf("%02x", v)
		}
	}
	return tokens
}

// scalarTokens renders each scalar as U+XXXX.
func scalarTokens(rs []rune) []string {
	tokens := make([]string, len(rs))
	for i, r := range rs {
		tokens[i] = fmt.Sprintf("U+%04X", r)
	}
	return tokens
}

// caretLine joins tokens with spaces and returns a second line that marks
// the token at index with carets.
func caretLine(tokens []string, index int) (string, string) {
	var caret strings.Builder
	for i, tok := range tokens {
		if i == index {
			caret.WriteString(strings.Repeat("^", len(tok)))
			break
		}
		caret.WriteString(strings.Repeat(" ", len(tok)+1))
	}
	return strings.Join(tokens, " "), caret.String()
}

// faultContext is the number of tokens kept on each side of a fault.
const faultContext = 8

// faultWindow trims tokens to faultContext entries around index, marking
// cut ends with "...". It returns the trimmed tokens and the fault's index
// within them.
func faultWindow(tokens []string, index int) ([]string, int) {
	start := max(index-faultContext, 0)
	end := min(index+faultContext+1, len(tokens))
	if start == 0 && end == len(tokens) {
		return tokens, index
	}

	out := make([]string, 0, end-start+2)
	if start > 0 {
		out = append(out, "...")
		index++
	}
	out = append(out, tokens[start:end]...)
	if end < len(tokens) {
		out = append(out, "...")
	}
	return out, index - start
}

// parseHexBytes accepts hex bytes split across args and separated by
// whitespace, commas or colons, with optional 0x prefixes.
func parseHexBytes(args []string) ([]byte, error) {
	var out []byte
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return unicode.IsSpace(r) || r == ',' || r == ':'
		})
		for _, field := range fields {
			field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
			if len(field)%2 != 0 {
				return nil, errors.InvalidInput(errors.PhaseDecode,
					fmt.Sprintf("hex token %q has an odd number of digits", field))
			}
			b, err := hex.DecodeString(field)
			if err != nil {
				return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err,
					fmt.Sprintf("hex token %q", field))
			}
			out = append(out, b...)
		}
	}
	return out, nil
}

// parseScalars accepts code points such as "U+61", "0x200000" or "4e60",
// separated by whitespace or commas.
func parseScalars(s string) ([]rune, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	out := make([]rune, 0, len(fields))
	for _, field := range fields {
		digits := field
		for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
			digits = strings.TrimPrefix(digits, prefix)
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || v > math.MaxInt32 {
			return nil, errors.InvalidInput(errors.PhaseEncode,
				fmt.Sprintf("code point %q is not a hex value up to 0x7fffffff", field))
		}
		out = append(out, rune(v))
	}
	return out, nil
}

// scalarText renders scalars as text through the codec, so that values Go
// would replace (surrogates, values past U+10FFFF) keep their bytes.
func scalarText(rs []rune) string {
	s, err := codec.EncodeToString(rs)
	if err != nil {
		return err.Error()
	}
	return s
}
