package fixture

import (
	"io/fs"
	"os"
	"path"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/CNife/simple-utf8/errors"
)

// Fixture is a text file paired with its natively decoded scalars.
type Fixture struct {
	Name    string
	Text    []byte
	Scalars []rune
}

// New builds a fixture from raw text. The text must be valid UTF-8.
func New(name string, text []byte) (Fixture, error) {
	if !utf8.Valid(text) {
		return Fixture{}, errors.InvalidFixture(name, nil, "file is not valid UTF-8")
	}
	return Fixture{
		Name:    name,
		Text:    text,
		Scalars: []rune(string(text)),
	}, nil
}

// Load reads every regular file in dir, in name order. Subdirectories are
// skipped.
func Load(dir string) ([]Fixture, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidFixture, err, "fixture directory "+dir)
	}
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS is Load over an fs.FS.
func LoadFS(fsys fs.FS, dir string) ([]Fixture, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidFixture, err, "read fixture directory")
	}

	var fixtures []Fixture
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			Logger().Debug("skipping non-regular entry", zap.String("name", entry.Name()))
			continue
		}

		name := entry.Name()
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, errors.InvalidFixture(name, err, "read failed")
		}

		f, err := New(name, data)
		if err != nil {
			return nil, err
		}
		Logger().Debug("loaded fixture",
			zap.String("name", name),
			zap.Int("bytes", len(f.Text)),
			zap.Int("scalars", len(f.Scalars)),
		)
		fixtures = append(fixtures, f)
	}

	Logger().Info("fixtures loaded", zap.String("dir", dir), zap.Int("count", len(fixtures)))
	return fixtures, nil
}
