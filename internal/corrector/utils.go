package corrector

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Tokenize splits text on whitespace. Empty tokens are discarded.
func Tokenize(text string) []string { return strings.Fields(text) }

// normalizeTokens NFC-normalizes tokens in place.
func normalizeTokens(tokens []string) []string {
	for i, t := range tokens {
		tokens[i] = norm.NFC.String(t)
	}
	return tokens
}

// unitDL is the optimal-string-alignment distance over code points with
// unit costs.
func unitDL(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			x := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				x = min(x, prev2[j-2]+1)
			}
			curr[j] = x
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[lb]
}
