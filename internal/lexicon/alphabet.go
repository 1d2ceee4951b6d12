package lexicon

// teluguChars lists the legal Telugu code points in code point order:
// candrabindu/anusvara/visarga, independent vowels, consonants, avagraha,
// dependent vowel signs, virama, length marks and vocalic vowels.
const teluguChars = "ఁంఃఅఆఇఈఉఊఋఌఎఏఐఒఓఔకఖగఘఙచఛజఝఞటఠడఢణతథదధనపఫబభమయరఱలళవశషసహఽాిీుూృౄెేైొోౌ్ౕౖౠౡ"

// Alphabet is an ordered set of grapheme units used to drive insertion and
// substitution. It is never modified after construction.
type Alphabet []rune

// NewAlphabet builds an alphabet from chars, dropping repeated runes while
// keeping first-occurrence order.
func NewAlphabet(chars string) Alphabet {
	seen := make(map[rune]struct{}, len(chars))
	out := make(Alphabet, 0, len(chars))
	for _, r := range chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// TeluguAlphabet returns the default Telugu alphabet.
func TeluguAlphabet() Alphabet {
	return NewAlphabet(teluguChars)
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}
