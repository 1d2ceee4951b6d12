// Package store persists the frequency table in BadgerDB so a model can be
// rebuilt without re-ingesting a corpus. Every word lives under its own
// "freq:<word>" key with the count as a decimal value.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const FrequencyKeyPrefix = "freq:"

// Config holds configuration for the frequency store.
type Config struct {
	// Path is the directory for BadgerDB files. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM. Used by tests.
	InMemory bool

	// Logger receives BadgerDB's internal messages. Nil disables them.
	Logger *slog.Logger
}

type FrequencyStore struct {
	DB  *badger.DB
	log *slog.Logger
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens (or creates) the store described by cfg.
func Open(cfg Config) (*FrequencyStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &FrequencyStore{DB: db, log: log}, nil
}

func (fs *FrequencyStore) Close() error { return fs.DB.Close() }

func (fs *FrequencyStore) Name() string { return "index" }

// Replace swaps the stored table for freqs.
func (fs *FrequencyStore) Replace(ctx context.Context, freqs map[string]int) error {
	if err := fs.DB.DropPrefix([]byte(FrequencyKeyPrefix)); err != nil {
		return fmt.Errorf("drop frequencies: %w", err)
	}

	wb := fs.DB.NewWriteBatch()
	defer wb.Cancel()
	n := 0
	for word, count := range freqs {
		if n%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := wb.Set([]byte(FrequencyKeyPrefix+word), strconv.AppendInt(nil, int64(count), 10)); err != nil {
			return fmt.Errorf("write %q: %w", word, err)
		}
		n++
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush frequencies: %w", err)
	}
	fs.log.Info("frequency index replaced", "words", n)
	return nil
}

// Load reads the whole table.
func (fs *FrequencyStore) Load(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int)
	prefix := []byte(FrequencyKeyPrefix)
	err := fs.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			word := string(item.Key()[len(prefix):])
			err := item.Value(func(val []byte) error {
				n, err := strconv.Atoi(string(val))
				if err != nil {
					return fmt.Errorf("corrupt count for %q: %w", word, err)
				}
				out[word] = n
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored words.
func (fs *FrequencyStore) Count() (int, error) {
	var count int
	err := fs.DB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(FrequencyKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
