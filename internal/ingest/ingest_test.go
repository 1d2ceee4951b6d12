package ingest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `<mediawiki>
  <page>
    <title>తెలుగు</title>
    <revision>
      <text xml:space="preserve">{{Infobox భాష}}'''తెలుగు''' ఒక [[ద్రావిడ భాషలు|ద్రావిడ]] [[భాష]].&lt;ref&gt;మూలం&lt;/ref&gt; తెలుగు మరియు కన్నడ.</text>
    </revision>
  </page>
  <page>
    <title>ఖాళీ</title>
    <revision><text>   </text></revision>
  </page>
  <page>
    <title>English</title>
    <revision><text>[[File:x.png|thumb]] plain english words [https://example.org link]</text></revision>
  </page>
</mediawiki>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCleanWikiText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"{{cite web|x}}తెలుగు", "తెలుగు"},
		{"[[ద్రావిడ భాషలు|ద్రావిడ]] భాష", "ద్రావిడ భాష"},
		{"[[భాష]]", "భాష"},
		{"ఒకటి<ref name=a>మూలం</ref> రెండు", "ఒకటి రెండు"},
		{"<b>బోల్డ్</b>&nbsp;పదం", "బోల్డ్పదం"},
		{"చూడండి [https://te.wikipedia.org] ఇక్కడ", "చూడండి ఇక్కడ"},
		{"[[File:a.png]]పటం", "పటం"},
		{"  అ \n\n ఆ  ", "అ ఆ"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanWikiText(tt.in))
		})
	}
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"తెలుగు", "ఒక", "భాష"}, SplitWords("తెలుగు, ఒక (భాష)."))
	assert.Empty(t, SplitWords(" ,. "))
}

func TestIsVocabularyWord(t *testing.T) {
	assert.True(t, IsVocabularyWord("భాష"))
	assert.False(t, IsVocabularyWord("క"), "single code point")
	assert.False(t, IsVocabularyWord("english"))
	assert.False(t, IsVocabularyWord("మరియు"), "stop word")
	assert.True(t, IsVocabularyWord("ABCభాష"))
}

func TestProcessDump(t *testing.T) {
	var text bytes.Buffer
	p := NewProcessor(quietLogger())

	freqs, stats, err := p.ProcessDump(context.Background(), strings.NewReader(sampleDump), &text)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Pages)
	assert.Equal(t, 2, freqs["తెలుగు"])
	assert.Equal(t, 1, freqs["భాష"])
	assert.Equal(t, 1, freqs["ద్రావిడ"])
	assert.Equal(t, 1, freqs["కన్నడ"])
	assert.NotContains(t, freqs, "మరియు")
	assert.NotContains(t, freqs, "మూలం")
	assert.Equal(t, 1, freqs["ఒక"])
	assert.NotContains(t, freqs, "english")

	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	assert.Len(t, lines, 2, "blank page is not written")
	assert.Contains(t, lines[0], "ద్రావిడ భాష")
}

func TestProcessDump_Malformed(t *testing.T) {
	p := NewProcessor(quietLogger())
	_, _, err := p.ProcessDump(context.Background(), strings.NewReader("<mediawiki><page><text>అఆ"), nil)
	assert.Error(t, err)
}

func TestCountCorpus(t *testing.T) {
	freqs, err := CountCorpus(context.Background(), strings.NewReader("తెలుగు భాష\nతెలుగు abc  \n\n భాష."))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"తెలుగు": 2, "భాష": 1, "భాష.": 1}, freqs)
}

func TestCountCorpus_NFC(t *testing.T) {
	decomposed := "\u0c1a\u0c46\u0c28\u0c4d\u0c28\u0c46\u0c56"
	composed := "\u0c1a\u0c46\u0c28\u0c4d\u0c28\u0c48"

	freqs, err := CountCorpus(context.Background(), strings.NewReader(decomposed+" "+composed))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{composed: 2}, freqs)
}

func TestCorpusSource_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("తెలుగు భాష తెలుగు"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	src := CorpusSource{Path: path}
	freqs, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"తెలుగు": 2, "భాష": 1}, freqs)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "none.xml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
