package fixture

import (
	"context"
	goerrors "errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CNife/simple-utf8/codec"
	"github.com/CNife/simple-utf8/errors"
)

// Result is the outcome of verifying one fixture.
type Result struct {
	Err     *errors.Error
	Name    string
	Bytes   int
	Scalars int
}

// Passed reports whether every check succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Verify cross-checks the codec against f. Err describes the first
// disagreement found; its Offset is a byte index for decode and encode
// checks and a scalar index for the round trip check.
func Verify(f Fixture) Result {
	res := Result{Name: f.Name, Bytes: len(f.Text), Scalars: len(f.Scalars)}
	res.Err = verify(f)

	if res.Err != nil {
		Logger().Warn("fixture failed", zap.String("name", f.Name), zap.Error(res.Err))
	} else {
		Logger().Debug("fixture passed", zap.String("name", f.Name))
	}
	return res
}

func verify(f Fixture) *errors.Error {
	decoded, err := codec.Decode(f.Text)
	if err != nil {
		return codecFailure(f.Name, "decode", err)
	}
	if i := firstDiff(decoded, f.Scalars); i >= 0 {
		return errors.Mismatch(f.Name, byteOffset(f.Text, i),
			fmt.Sprintf("decoded scalar %d is %s, native is %s", i, at(decoded, i), at(f.Scalars, i)))
	}

	encoded, err := codec.Encode(f.Scalars)
	if err != nil {
		return codecFailure(f.Name, "encode", err)
	}
	if i := firstDiff(encoded, f.Text); i >= 0 {
		return errors.Mismatch(f.Name, i,
			fmt.Sprintf("encoded byte is %s, file byte is %s", byteAt(encoded, i), byteAt(f.Text, i)))
	}

	roundTrip, err := codec.Decode(encoded)
	if err != nil {
		return codecFailure(f.Name, "round trip decode", err)
	}
	if i := firstDiff(roundTrip, f.Scalars); i >= 0 {
		return errors.Mismatch(f.Name, i, "round trip changed scalar")
	}
	return nil
}

// VerifyAll verifies fixtures concurrently. Results keep the order of
// fixtures. The error is non-nil only if ctx is done before all fixtures
// were checked.
func VerifyAll(ctx context.Context, fixtures []Fixture) ([]Result, error) {
	results := make([]Result, len(fixtures))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range fixtures {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Verify(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func codecFailure(name, step string, err error) *errors.Error {
	offset := errors.NoOffset
	var de *codec.DecodeError
	var ee *codec.EncodeError
	switch {
	case goerrors.As(err, &de):
		offset = de.Index
	case goerrors.As(err, &ee):
		offset = ee.Index
	}
	return errors.New(errors.PhaseVerify, errors.KindMismatch).
		Source(name).
		Offset(offset).
		Cause(err).
		Detail("%s failed on native text", step).
		Build()
}

// firstDiff returns the first index where a and b differ, or -1.
func firstDiff[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// byteOffset maps a scalar index to the byte offset of that scalar in text.
func byteOffset(text []byte, scalar int) int {
	offset := 0
	for i := 0; i < scalar && offset < len(text); i++ {
		offset += max(codec.SequenceLen(text[offset]), 1)
	}
	return offset
}

func at(s []rune, i int) string {
	if i >= len(s) {
		return "<end>"
	}
	return fmt.Sprintf("%U", s[i])
}

func byteAt(b []byte, i int) string {
	if i >= len(b) {
		return "<end>"
	}
	return fmt.Sprintf("0x%02x", b[i])
}
