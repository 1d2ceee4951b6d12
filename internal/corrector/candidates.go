package corrector

import (
	"cmp"
	"slices"

	"telspell/internal/lexicon"
)

// Lexicon is the read-only view of a language model the engine needs.
type Lexicon interface {
	Alphabet() []rune
	IsValid(word string) bool
	Probability(word string) float64
}

// =====================
// Candidate generation
// =====================

// Generate returns the vocabulary words one edit away from word, most
// probable first. Words of equal probability keep enumeration order.
func Generate(word string, lex Lexicon) []string {
	if lexicon.IsBlank(word) {
		return []string{}
	}
	out := []string{}
	for _, cand := range Edits(word, lex.Alphabet()) {
		if lex.IsValid(cand) {
			out = append(out, cand)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(lex.Probability(b), lex.Probability(a))
	})
	return out
}

// Edits enumerates every distinct single-edit variant of word in a fixed
// order: deletions, insertions, substitutions, transpositions. Blank variants
// and word itself are omitted.
func Edits(word string, alphabet []rune) []string {
	r := []rune(word)
	n := len(r)
	size := (2*n+1)*len(alphabet) + 2*n
	seen := make(map[string]struct{}, size)
	out := make([]string, 0, size)
	buf := make([]rune, 0, n+1)

	add := func(v []rune) {
		s := string(v)
		if s == word || lexicon.IsBlank(s) {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	// deletions
	for i := 0; i < n; i++ {
		buf = append(append(buf[:0], r[:i]...), r[i+1:]...)
		add(buf)
	}
	// insertions
	for i := 0; i <= n; i++ {
		for _, c := range alphabet {
			buf = append(append(append(buf[:0], r[:i]...), c), r[i:]...)
			add(buf)
		}
	}
	// substitutions
	for i := 0; i < n; i++ {
		for _, c := range alphabet {
			if c == r[i] {
				continue
			}
			buf = append(buf[:0], r...)
			buf[i] = c
			add(buf)
		}
	}
	// transpositions
	for i := 0; i+1 < n; i++ {
		buf = append(buf[:0], r...)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		add(buf)
	}
	return out
}
