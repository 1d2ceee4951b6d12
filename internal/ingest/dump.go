// Package ingest turns raw Telugu text into word frequency tables: MediaWiki
// XML dumps (with markup cleanup) and plain text corpora, optionally
// compressed.
package ingest

import (
	"bufio"
	"compress/bzip2"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const progressEvery = 1000

// Stats summarizes one ingestion run.
type Stats struct {
	Pages int
	Words int
}

// Processor ingests MediaWiki dumps.
type Processor struct {
	logger *slog.Logger
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// ProcessDump streams a MediaWiki XML export, cleans every <text> element
// and counts its vocabulary words. When textOut is non-nil each non-empty
// clean page is written to it as one line.
func (p *Processor) ProcessDump(ctx context.Context, r io.Reader, textOut io.Writer) (map[string]int, Stats, error) {
	freqs := make(map[string]int)
	var stats Stats

	var bw *bufio.Writer
	if textOut != nil {
		bw = bufio.NewWriter(textOut)
	}

	dec := xml.NewDecoder(r)
	dec.Strict = false

	var (
		inText bool
		page   strings.Builder
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return freqs, stats, fmt.Errorf("read dump after %d pages: %w", stats.Pages, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "text" {
				inText = true
				page.Reset()
			}
		case xml.CharData:
			if inText {
				page.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local != "text" {
				continue
			}
			inText = false
			n, err := p.processPage(page.String(), freqs, bw)
			if err != nil {
				return freqs, stats, err
			}
			stats.Words += n
			stats.Pages++
			if stats.Pages%progressEvery == 0 {
				p.logger.Info("dump progress", "pages", stats.Pages, "unique_words", len(freqs))
				if err := ctx.Err(); err != nil {
					return freqs, stats, err
				}
			}
		}
	}

	if bw != nil {
		if err := bw.Flush(); err != nil {
			return freqs, stats, err
		}
	}
	p.logger.Info("dump processed", "pages", stats.Pages, "words", stats.Words, "unique_words", len(freqs))
	return freqs, stats, nil
}

func (p *Processor) processPage(content string, freqs map[string]int, out *bufio.Writer) (int, error) {
	if strings.TrimSpace(content) == "" {
		return 0, nil
	}
	clean := CleanWikiText(content)
	if clean == "" {
		return 0, nil
	}
	if out != nil {
		if _, err := out.WriteString(clean); err != nil {
			return 0, err
		}
		if err := out.WriteByte('\n'); err != nil {
			return 0, err
		}
	}
	n := 0
	for _, w := range SplitWords(clean) {
		w = normalizeWord(w)
		if IsVocabularyWord(w) {
			freqs[w]++
			n++
		}
	}
	return n, nil
}

// CountCorpus counts every whitespace separated token of r that contains a
// Telugu code point.
func CountCorpus(ctx context.Context, r io.Reader) (map[string]int, error) {
	freqs := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lines := 0
	for sc.Scan() {
		lines++
		if lines%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for _, w := range strings.Fields(sc.Text()) {
			if HasTelugu(w) {
				freqs[normalizeWord(w)]++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return freqs, nil
}

// CorpusSource counts a plain text corpus file on load.
type CorpusSource struct {
	Path string
}

func (s CorpusSource) Name() string { return "corpus:" + s.Path }

func (s CorpusSource) Load(ctx context.Context) (map[string]int, error) {
	rc, err := Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return CountCorpus(ctx, rc)
}

// Open opens path, decompressing .gz and .bz2 files transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &stackedReader{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(lower, ".bz2"):
		return &stackedReader{Reader: bzip2.NewReader(bufio.NewReader(f)), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReader) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
