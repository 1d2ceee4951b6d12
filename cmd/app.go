package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"telspell/internal/config"
	"telspell/internal/corrector"
	"telspell/internal/customdict"
	"telspell/internal/freqfile"
	"telspell/internal/lexicon"
	"telspell/internal/logging"
	"telspell/internal/store"
	"telspell/pkg/options"
)

var errNoRedis = errors.New("custom dictionary needs redis.addr (or REDIS_ADDR)")

// app holds the dependencies shared by the subcommands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	closers []io.Closer
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.Open(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return &app{cfg: cfg, logger: logger, closers: []io.Closer{closer}}, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
}

// customDict connects to Redis, or returns nil when no address is set.
func (a *app) customDict() *customdict.CustomDict {
	if a.cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	a.closers = append(a.closers, client)
	return customdict.New(client, a.cfg.Redis.Key)
}

func (a *app) openIndex() (*store.FrequencyStore, error) {
	fs, err := store.Open(store.Config{Path: a.cfg.IndexPath, Logger: a.logger})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, fs)
	return fs, nil
}

// sources lists the frequency file, the Badger index when one has been
// built, and the sample vocabulary, in that order.
func (a *app) sources() []lexicon.Source {
	srcs := []lexicon.Source{freqfile.Source{Path: a.cfg.DictionaryPath}}
	if a.cfg.IndexPath != "" {
		if _, err := os.Stat(a.cfg.IndexPath); err == nil {
			if fs, err := a.openIndex(); err != nil {
				a.logger.Warn("frequency index unavailable", "path", a.cfg.IndexPath, "err", err)
			} else {
				srcs = append(srcs, fs)
			}
		}
	}
	return append(srcs, lexicon.SampleSource{})
}

func (a *app) corrector(ctx context.Context, extra ...options.Options) (*corrector.SpellCorrector, error) {
	var dict corrector.CustomWords
	if cd := a.customDict(); cd != nil {
		dict = cd
	}
	cc := a.cfg.Corrector
	opts := []options.Options{
		options.WithMaxSuggestions(cc.MaxSuggestions),
		options.WithCustomWordFrequency(cc.CustomWordFrequency),
		options.WithAlphabet(cc.Alphabet),
	}
	if cc.DisableNormalize {
		opts = append(opts, options.WithoutNormalization())
	}
	return corrector.NewSpellCorrector(ctx, a.sources(), dict, a.logger, append(opts, extra...)...)
}
