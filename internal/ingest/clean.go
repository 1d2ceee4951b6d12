package ingest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// stopWords are frequent function words kept out of the vocabulary.
var stopWords = map[string]struct{}{
	"మరియు": {}, "కానీ": {}, "అయితే": {}, "కాబట్టి": {}, "అని": {},
	"గా": {}, "ను": {}, "కు": {}, "లో": {}, "నుండి": {},
}

var (
	templateRe  = regexp.MustCompile(`\{\{[^}]*\}\}`)
	fileLinkRe  = regexp.MustCompile(`\[\[(?:File|Image|దస్త్రం|బొమ్మ):[^\]]*\]\]`)
	pipedLinkRe = regexp.MustCompile(`\[\[[^\]]*?\|([^\]]*?)\]\]`)
	plainLinkRe = regexp.MustCompile(`\[\[([^\]|]*?)\]\]`)
	refRe       = regexp.MustCompile(`(?s)<ref[^>]*>.*?</ref>`)
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	entityRe    = regexp.MustCompile(`&[a-z]+;`)
	extLinkRe   = regexp.MustCompile(`\[https?://[^\] ]*\]`)
	spaceRe     = regexp.MustCompile(`\s+`)
	wordSplitRe = regexp.MustCompile(`[\s\p{P}\p{S}]+`)
)

// CleanWikiText strips MediaWiki markup and collapses whitespace.
func CleanWikiText(text string) string {
	text = templateRe.ReplaceAllString(text, "")
	text = fileLinkRe.ReplaceAllString(text, "")
	text = pipedLinkRe.ReplaceAllString(text, "$1")
	text = plainLinkRe.ReplaceAllString(text, "$1")
	text = refRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = entityRe.ReplaceAllString(text, "")
	text = extLinkRe.ReplaceAllString(text, "")
	text = spaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitWords splits clean text on whitespace, punctuation and symbols.
func SplitWords(text string) []string {
	parts := wordSplitRe.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasTelugu reports whether s contains at least one Telugu code point.
func HasTelugu(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Telugu, r) {
			return true
		}
	}
	return false
}

// IsVocabularyWord reports whether a word from a dump belongs in the
// frequency table: at least two code points, some Telugu and no stop word.
func IsVocabularyWord(word string) bool {
	if utf8.RuneCountInString(word) < 2 || !HasTelugu(word) {
		return false
	}
	_, stop := stopWords[word]
	return !stop
}

func normalizeWord(w string) string { return norm.NFC.String(w) }
