// Package freqfile reads and writes the plain-text frequency table, one
// "word|count" entry per line. Reading also accepts the whitespace separated
// "word count" layout used by common frequency dictionaries.
package freqfile

import (
	"bufio"
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const separator = '|'

// Source loads a model table from a frequency file.
type Source struct {
	Path string
}

func (s Source) Name() string { return "file:" + s.Path }

func (s Source) Load(context.Context) (map[string]int, error) {
	return Read(s.Path)
}

// Read maps the file into memory and parses it. Blank, malformed and
// negative entries are skipped; repeated words are summed, saturating at
// math.MaxInt.
func Read(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return map[string]int{}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer data.Unmap()

	return Parse(data), nil
}

// Parse decodes a frequency table held in memory.
func Parse(data []byte) map[string]int {
	out := make(map[string]int)
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		word, count, ok := parseLine(string(bytes.TrimSpace(line)))
		if !ok {
			continue
		}
		out[word] = addCount(out[word], count)
	}
	return out
}

func parseLine(line string) (string, int, bool) {
	if line == "" {
		return "", 0, false
	}
	var word, num string
	if i := strings.LastIndexByte(line, separator); i >= 0 {
		word, num = strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
	} else {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return "", 0, false
		}
		word, num = parts[0], parts[1]
	}
	if word == "" {
		return "", 0, false
	}
	count, err := strconv.Atoi(num)
	if err != nil {
		fv, err2 := strconv.ParseFloat(num, 64)
		if err2 != nil || math.IsNaN(fv) || fv < 0 || fv >= math.MaxInt {
			return "", 0, false
		}
		count = int(fv)
	}
	if count < 0 {
		return "", 0, false
	}
	return word, count, true
}

func addCount(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// Write emits freqs sorted by count descending, then word.
func Write(w io.Writer, freqs map[string]int) error {
	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(freqs))
	for word, c := range freqs {
		entries = append(entries, entry{word, c})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return strings.Compare(a.word, b.word)
	})

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s%c%d\n", e.word, separator, e.count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the table next to path and renames it into place, so
// readers never observe a partial file.
func WriteFile(path string, freqs map[string]int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, freqs); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
