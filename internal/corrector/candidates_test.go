package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telspell/internal/lexicon"
)

func TestEdits_Order(t *testing.T) {
	got := Edits("ab", []rune("xy"))
	want := []string{
		// deletions
		"b", "a",
		// insertions
		"xab", "yab", "axb", "ayb", "abx", "aby",
		// substitutions
		"xb", "yb", "ax", "ay",
		// transpositions
		"ba",
	}
	assert.Equal(t, want, got)
}

func TestEdits_Dedupes(t *testing.T) {
	assert.Equal(t, []string{"a", "aaa"}, Edits("aa", []rune("a")))
}

func TestEdits_SingleCharacterSkipsEmpty(t *testing.T) {
	assert.Equal(t, []string{"ba", "ab", "b"}, Edits("a", []rune("b")))
}

func TestEdits_NoAlphabet(t *testing.T) {
	assert.Equal(t, []string{"bc", "ac", "ab", "bac", "acb"}, Edits("abc", nil))
}

func TestEdits_Counts(t *testing.T) {
	alphabet := lexicon.TeluguAlphabet()
	word := "కలం"
	n := len([]rune(word))

	got := Edits(word, alphabet)
	upper := n + (n+1)*len(alphabet) + n*len(alphabet) + n - 1
	assert.LessOrEqual(t, len(got), upper)
	assert.Greater(t, len(got), n*len(alphabet))

	seen := map[string]bool{}
	for _, e := range got {
		assert.False(t, seen[e], "duplicate %q", e)
		seen[e] = true
		assert.NotEqual(t, word, e)
		assert.LessOrEqual(t, unitDL(word, e), 1, e)
	}
}

func TestGenerate_DeletionScenario(t *testing.T) {
	m := lexicon.New(map[string]int{"భాష": 300}, lexicon.TeluguAlphabet())

	got := Generate("భాషా", m)
	require.Equal(t, []string{"భాష"}, got)
	assert.InDelta(t, 1.0, m.Probability("భాష"), 1e-12)
}

func TestGenerate_NoPath(t *testing.T) {
	m := lexicon.New(map[string]int{"ఆట": 10}, lexicon.TeluguAlphabet())

	got := Generate("ఝజ", m)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerate_Blank(t *testing.T) {
	m := lexicon.New(lexicon.SampleFrequencies(), lexicon.TeluguAlphabet())

	for _, w := range []string{"", " ", "\t"} {
		got := Generate(w, m)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestGenerate_NeverReturnsBlank(t *testing.T) {
	// a single-character word deletes to "", which the model treats as valid
	m := lexicon.New(map[string]int{"కళ": 4}, lexicon.TeluguAlphabet())

	got := Generate("క", m)
	assert.Equal(t, []string{"కళ"}, got)
}

func TestGenerate_AlphabetExternalInput(t *testing.T) {
	m := lexicon.New(lexicon.SampleFrequencies(), lexicon.TeluguAlphabet())

	assert.Empty(t, Generate("abc", m))
	assert.Empty(t, Generate("\xff\xfe", m))
}

func TestGenerate_RanksByProbabilityStable(t *testing.T) {
	m := lexicon.New(map[string]int{"b": 5, "a": 5, "ba": 10, "xab": 5}, lexicon.NewAlphabet("xy"))

	assert.Equal(t, []string{"ba", "b", "a", "xab"}, Generate("ab", m))
}

func TestGenerate_Properties(t *testing.T) {
	m := lexicon.New(lexicon.SampleFrequencies(), lexicon.TeluguAlphabet())

	inputs := []string{"భాషా", "తెలుగ", "దెశం", "పరిక్ష", "కళశాల", "చదవు", "ముంబాయి", "విధ్యార్థి"}
	for _, w := range inputs {
		t.Run(w, func(t *testing.T) {
			require.False(t, m.IsValid(w))
			got := Generate(w, m)
			for i, c := range got {
				assert.True(t, m.IsValid(c), c)
				assert.LessOrEqual(t, unitDL(w, c), 1, c)
				if i > 0 {
					assert.GreaterOrEqual(t, m.Probability(got[i-1]), m.Probability(c))
				}
			}
		})
	}
}

func TestGenerate_FindsSampleCorrections(t *testing.T) {
	m := lexicon.New(lexicon.SampleFrequencies(), lexicon.TeluguAlphabet())

	assert.Contains(t, Generate("భాషా", m), "భాష")
	assert.Contains(t, Generate("తెలుగ", m), "తెలుగు")
	assert.Contains(t, Generate("దెశం", m), "దేశం")
}

func TestUnitDL(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"ab", "ba", 1},
		{"భాషా", "భాష", 1},
		{"ఝజ", "ఆట", 2},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, unitDL(tt.a, tt.b))
			assert.Equal(t, tt.want, unitDL(tt.b, tt.a))
		})
	}
}
