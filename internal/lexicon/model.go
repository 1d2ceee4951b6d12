// Package lexicon holds the frozen vocabulary used for spelling correction:
// word frequencies, their total and the alphabet candidate generation runs
// over. A Model never changes after construction; derived models are built
// copy-on-write so one snapshot can be shared by any number of readers.
package lexicon

import (
	"maps"
	"math"
	"slices"
	"strings"
	"unicode"
)

// Model is an immutable word→frequency table.
type Model struct {
	freq     map[string]int
	total    int64
	alphabet Alphabet
}

// New freezes freqs into a Model. The map is copied; negative counts are
// dropped. The total saturates at math.MaxInt64, so no probability exceeds 1.
// A nil alphabet yields a model that generates no insertions or
// substitutions.
func New(freqs map[string]int, alphabet Alphabet) *Model {
	m := &Model{
		freq:     make(map[string]int, len(freqs)),
		alphabet: slices.Clone(alphabet),
	}
	for w, f := range freqs {
		if f < 0 {
			continue
		}
		m.freq[w] = f
		m.total = SaturatingAdd(m.total, int64(f))
	}
	return m
}

// Empty returns a model with no words over the given alphabet.
func Empty(alphabet Alphabet) *Model {
	return New(nil, alphabet)
}

// IsValid reports whether word is a vocabulary entry. Blank words are
// trivially valid.
func (m *Model) IsValid(word string) bool {
	if IsBlank(word) {
		return true
	}
	_, ok := m.freq[word]
	return ok
}

// Probability returns frequency/total for a known word and 0 otherwise.
func (m *Model) Probability(word string) float64 {
	if m.total <= 0 {
		return 0
	}
	f, ok := m.freq[word]
	if !ok {
		return 0
	}
	return float64(f) / float64(m.total)
}

// Alphabet returns a copy of the model alphabet.
func (m *Model) Alphabet() []rune {
	return slices.Clone(m.alphabet)
}

func (m *Model) Frequency(word string) (int, bool) {
	f, ok := m.freq[word]
	return f, ok
}

func (m *Model) Total() int64 { return m.total }

func (m *Model) Len() int { return len(m.freq) }

// Extend returns a new model where every entry of extra is set, overriding
// existing counts.
func (m *Model) Extend(extra map[string]int) *Model {
	next := maps.Clone(m.freq)
	if next == nil {
		next = make(map[string]int, len(extra))
	}
	maps.Copy(next, extra)
	return New(next, m.alphabet)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// SaturatingAdd returns a+b for non-negative operands, clamped to
// math.MaxInt64.
func SaturatingAdd(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}
