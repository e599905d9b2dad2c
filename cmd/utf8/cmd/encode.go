package cmd

import (
	goerrors "errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CNife/simple-utf8/codec"
	"github.com/CNife/simple-utf8/errors"
)

func newEncodeCmd(a *app) *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text or code points to UTF-8 bytes",
		Long: `Encode converts scalar values to UTF-8 bytes.

The scalars come from the text arguments, from a UTF-8 file, or from an
explicit list of hex code points:

  utf8 encode 学习
  utf8 encode --file notes.txt
  utf8 encode --scalars "U+61 U+62 U+200000"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			scalarList, _ := cmd.Flags().GetString("scalars")

			src, err := encodeInput(args, file, scalarList)
			if err != nil {
				return err
			}
			return a.runEncode(cmd, src)
		},
	}

	encodeCmd.Flags().StringP("file", "f", "", "Read text from a file")
	encodeCmd.Flags().StringP("scalars", "s", "", "Hex code points to encode")
	encodeCmd.MarkFlagsMutuallyExclusive("file", "scalars")
	return encodeCmd
}

func encodeInput(args []string, file, scalarList string) ([]rune, error) {
	switch {
	case scalarList != "":
		return parseScalars(scalarList)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		if !utf8.Valid(data) {
			return nil, errors.InvalidInput(errors.PhaseEncode, file+" is not valid UTF-8; use decode to locate the fault")
		}
		return []rune(string(data)), nil
	default:
		text := strings.Join(args, " ")
		if !utf8.ValidString(text) {
			return nil, errors.InvalidInput(errors.PhaseEncode, "text argument is not valid UTF-8; use decode to locate the fault")
		}
		return []rune(text), nil
	}
}

func (a *app) runEncode(cmd *cobra.Command, src []rune) error {
	out := cmd.OutOrStdout()

	data, err := codec.Encode(src)
	if err != nil {
		var ee *codec.EncodeError
		if goerrors.As(err, &ee) {
			line, caret := caretLine(faultWindow(scalarTokens(ee.Src), ee.Index))
			fmt.Fprintln(cmd.ErrOrStderr(), line)
			fmt.Fprintln(cmd.ErrOrStderr(), a.render(caretStyle, caret))
			a.logger.Debug("encode failed", zap.Int("index", ee.Index), zap.Stringer("kind", ee.Kind))
		}
		return err
	}

	a.logger.Debug("encoded", zap.Int("scalars", len(src)), zap.Int("bytes", len(data)))
	fmt.Fprintln(out, strings.Join(byteTokens(data, a.cfg.Output.ByteFormat), " "))
	return nil
}
