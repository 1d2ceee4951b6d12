package lexicon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
)

// ErrNoSource is returned by Load when no source produced a table.
var ErrNoSource = errors.New("no frequency source available")

// Source supplies a word→frequency table. Implementations live next to the
// medium they read: a frequency file, the Badger index, a raw corpus or the
// built-in sample.
type Source interface {
	Name() string
	Load(ctx context.Context) (map[string]int, error)
}

// MapSource serves a caller-provided table.
type MapSource map[string]int

func (MapSource) Name() string { return "map" }

func (s MapSource) Load(context.Context) (map[string]int, error) {
	return maps.Clone(map[string]int(s)), nil
}

// Load builds a model from the first source that yields a non-empty table.
// Failing and empty sources are logged and skipped.
func Load(ctx context.Context, alphabet Alphabet, logger *slog.Logger, sources ...Source) (*Model, string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var errs []error
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		freqs, err := src.Load(ctx)
		if err != nil {
			logger.Warn("frequency source failed", "source", src.Name(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if len(freqs) == 0 {
			logger.Warn("frequency source is empty", "source", src.Name())
			continue
		}
		m := New(freqs, alphabet)
		logger.Info("language model loaded", "source", src.Name(), "words", m.Len(), "total", m.Total())
		return m, src.Name(), nil
	}
	return nil, "", errors.Join(append([]error{ErrNoSource}, errs...)...)
}
