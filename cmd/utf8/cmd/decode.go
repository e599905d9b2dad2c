package cmd

import (
	goerrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CNife/simple-utf8/codec"
	"github.com/CNife/simple-utf8/config"
	"github.com/CNife/simple-utf8/errors"
)

func newDecodeCmd(a *app) *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode [hex bytes...]",
		Short: "Decode UTF-8 bytes to Unicode scalar values",
		Long: `Decode converts UTF-8 bytes to scalar values.

Bytes are given as hex, in any grouping, or read raw from a file:

  utf8 decode e5 ad a6 e4 b9 a0
  utf8 decode E5ADA6E4B9A0
  utf8 decode --file data.bin

On malformed input the faulty byte is marked and the command fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			var (
				src []byte
				err error
			)
			if file != "" {
				src, err = os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
			} else {
				if len(args) == 0 {
					return errors.InvalidInput(errors.PhaseDecode, "no bytes given")
				}
				src, err = parseHexBytes(args)
				if err != nil {
					return err
				}
			}
			return a.runDecode(cmd, src)
		},
	}

	decodeCmd.Flags().StringP("file", "f", "", "Read raw bytes from a file")
	return decodeCmd
}

func (a *app) runDecode(cmd *cobra.Command, src []byte) error {
	out := cmd.OutOrStdout()

	scalars, err := codec.Decode(src)
	if err != nil {
		var de *codec.DecodeError
		if goerrors.As(err, &de) {
			line, caret := caretLine(faultWindow(byteTokens(de.Src, a.cfg.Output.ByteFormat), de.Index))
			fmt.Fprintln(cmd.ErrOrStderr(), line)
			fmt.Fprintln(cmd.ErrOrStderr(), a.render(caretStyle, caret))
			a.logger.Debug("decode failed", zap.Int("index", de.Index), zap.Stringer("kind", de.Kind))
		}
		return err
	}

	a.logger.Debug("decoded", zap.Int("bytes", len(src)), zap.Int("scalars", len(scalars)))
	if a.cfg.Output.ScalarFormat == config.ScalarFormatText {
		fmt.Fprintln(out, scalarText(scalars))
		return nil
	}
	fmt.Fprintln(out, strings.Join(scalarTokens(scalars), " "))
	return nil
}
