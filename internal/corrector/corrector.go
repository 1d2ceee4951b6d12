package corrector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"

	"telspell/internal/lexicon"
	"telspell/pkg/options"
)

var ErrEmptyWord = errors.New("word is empty")

// CustomWords is the persistent store of user-added words.
type CustomWords interface {
	Add(ctx context.Context, word string) error
	Remove(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

// SpellCorrector serves corrections from the current model snapshot. The
// snapshot is the base model loaded from the configured sources with the
// custom words laid over it; writers replace it wholesale, readers never
// block.
type SpellCorrector struct {
	opts     options.CorrectorOptions
	alphabet lexicon.Alphabet
	sources  []lexicon.Source
	dict     CustomWords
	logger   *slog.Logger

	mu     sync.Mutex // serializes writers: dict I/O, base and custom
	base   *lexicon.Model
	custom map[string]int
	model  atomic.Pointer[lexicon.Model]
}

// =====================
// Initialization
// =====================

func NewSpellCorrector(ctx context.Context, sources []lexicon.Source, dict CustomWords, logger *slog.Logger, opts ...options.Options) (*SpellCorrector, error) {
	if logger == nil {
		logger = slog.Default()
	}
	o := options.Resolve(opts...)
	alphabet := lexicon.TeluguAlphabet()
	if o.Alphabet != "" {
		alphabet = lexicon.NewAlphabet(o.Alphabet)
	}
	sc := &SpellCorrector{
		opts:     o,
		alphabet: alphabet,
		sources:  sources,
		dict:     dict,
		logger:   logger,
		custom:   make(map[string]int),
	}
	if err := sc.Reload(ctx); err != nil {
		return nil, fmt.Errorf("load language model: %w", err)
	}
	return sc, nil
}

// Reload rebuilds the base model from the sources and re-reads the custom
// words, holding the writer lock throughout. On failure the current snapshot
// stays in place.
func (sc *SpellCorrector) Reload(ctx context.Context) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	base, source, err := lexicon.Load(ctx, sc.alphabet, sc.logger, sc.sources...)
	if err != nil {
		return err
	}
	sc.base = base
	if custom, err := sc.loadCustomWords(ctx); err != nil {
		sc.logger.Warn("custom words not loaded, keeping previous set", "err", err)
	} else {
		sc.custom = custom
	}
	sc.publishLocked()
	sc.logger.Info("spell corrector ready", "source", source, "words", sc.Model().Len(), "custom", len(sc.custom))
	return nil
}

func (sc *SpellCorrector) loadCustomWords(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int)
	if sc.dict == nil {
		return out, nil
	}
	words, err := sc.dict.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		if w = sc.normalize(w); w != "" {
			out[w] = sc.opts.CustomWordFrequency
		}
	}
	return out, nil
}

func (sc *SpellCorrector) publishLocked() {
	m := sc.base
	if len(sc.custom) > 0 {
		m = m.Extend(sc.custom)
	}
	sc.model.Store(m)
}

// Model returns the current snapshot.
func (sc *SpellCorrector) Model() *lexicon.Model { return sc.model.Load() }

func (sc *SpellCorrector) normalize(word string) string {
	word = strings.TrimSpace(word)
	if sc.opts.NormalizeNFC {
		word = norm.NFC.String(word)
	}
	return word
}

// =====================
// Correction
// =====================

// CorrectText tokenizes text on whitespace and corrects every token.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	tokens := Tokenize(text)
	if sc.opts.NormalizeNFC {
		tokens = normalizeTokens(tokens)
	}
	out, candidates := Correct(tokens, sc.Model())

	sugByPos := make(map[int]SuggestionInfo)
	for i, tok := range tokens {
		cands, ok := candidates[tok]
		if !ok {
			continue
		}
		decision := DecisionNoSuggestion
		if len(cands) > 0 {
			decision = DecisionAutoReplace
		}
		sugByPos[i] = SuggestionInfo{Token: tok, Suggestions: sc.limit(cands), Decision: decision}
	}
	if len(candidates) > 0 {
		sc.logger.Debug("text corrected", "tokens", len(tokens), "misspelled", len(candidates))
	}

	return CorrectionResult{
		Original:    text,
		Corrected:   strings.Join(out, " "),
		Tokens:      tokens,
		Output:      out,
		Candidates:  candidates,
		Suggestions: sugByPos,
	}
}

// Suggest returns the ranked candidates for a single word. Valid and blank
// words yield none.
func (sc *SpellCorrector) Suggest(word string) []Candidate {
	word = sc.normalize(word)
	m := sc.Model()
	if m.IsValid(word) {
		return []Candidate{}
	}
	terms := sc.limit(Generate(word, m))
	out := make([]Candidate, 0, len(terms))
	for _, t := range terms {
		out = append(out, Candidate{Term: t, Probability: m.Probability(t), Edits: unitDL(word, t)})
	}
	return out
}

// IsValid reports whether word is known to the current snapshot.
func (sc *SpellCorrector) IsValid(word string) bool {
	return sc.Model().IsValid(sc.normalize(word))
}

func (sc *SpellCorrector) limit(cands []string) []string {
	if sc.opts.MaxSuggestions > 0 && len(cands) > sc.opts.MaxSuggestions {
		return cands[:sc.opts.MaxSuggestions]
	}
	return cands
}

// =====================
// Custom words
// =====================

// AddCustomWord stores word in the custom dictionary and publishes a
// snapshot containing it.
func (sc *SpellCorrector) AddCustomWord(ctx context.Context, word string) error {
	w := sc.normalize(word)
	if w == "" {
		return ErrEmptyWord
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.dict != nil {
		if err := sc.dict.Add(ctx, w); err != nil {
			return err
		}
	}
	sc.custom[w] = sc.opts.CustomWordFrequency
	sc.publishLocked()
	return nil
}

// RemoveCustomWord drops word from the custom dictionary. Words that are
// also in the base model stay valid.
func (sc *SpellCorrector) RemoveCustomWord(ctx context.Context, word string) error {
	w := sc.normalize(word)
	if w == "" {
		return ErrEmptyWord
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.dict != nil {
		if err := sc.dict.Remove(ctx, w); err != nil {
			return err
		}
	}
	delete(sc.custom, w)
	sc.publishLocked()
	return nil
}
