package corrector

import "telspell/internal/lexicon"

// =====================
// Correction over a token sequence
// =====================

// Correct classifies every token against lex and replaces invalid ones with
// their best candidate. The returned map holds the candidate set of every
// invalid token, including tokens with no candidates. Blank and valid tokens
// pass through untouched and never appear in the map.
func Correct(tokens []string, lex Lexicon) ([]string, map[string][]string) {
	out := make([]string, len(tokens))
	candidates := make(map[string][]string)

	for i, tok := range tokens {
		out[i] = tok
		if lexicon.IsBlank(tok) || lex.IsValid(tok) {
			continue
		}
		cands, ok := candidates[tok]
		if !ok {
			cands = Generate(tok, lex)
			candidates[tok] = cands
		}
		if len(cands) > 0 {
			out[i] = cands[0]
		}
	}
	return out, candidates
}
