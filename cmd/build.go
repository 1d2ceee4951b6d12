package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"telspell/internal/freqfile"
	"telspell/internal/ingest"
)

const (
	corpusFile      = "telugu_corpus.txt"
	frequenciesFile = "telugu_frequencies.txt"
)

func newBuildCmd() *cobra.Command {
	var (
		dump   string
		corpus string
		out    string
		index  bool
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a frequency table from a Wikipedia dump or a text corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (dump == "") == (corpus == "") {
				return errors.New("exactly one of --dump or --corpus is required")
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()

			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}

			var freqs map[string]int
			if dump != "" {
				freqs, err = buildFromDump(cmd, a, dump, out)
			} else {
				freqs, err = buildFromCorpus(cmd, corpus)
			}
			if err != nil {
				return err
			}
			if len(freqs) == 0 {
				return fmt.Errorf("no Telugu words found in %s", dump+corpus)
			}

			freqPath := filepath.Join(out, frequenciesFile)
			if err := freqfile.WriteFile(freqPath, freqs); err != nil {
				return err
			}
			a.logger.Info("frequency table written", "path", freqPath, "words", len(freqs))

			if index {
				fs, err := a.openIndex()
				if err != nil {
					return err
				}
				if err := fs.Replace(ctx, freqs); err != nil {
					return err
				}
				a.logger.Info("frequency index rebuilt", "path", a.cfg.IndexPath, "words", len(freqs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d words written to %s\n", len(freqs), freqPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dump, "dump", "", "MediaWiki XML dump (.xml, .xml.gz or .xml.bz2)")
	cmd.Flags().StringVar(&corpus, "corpus", "", "plain text corpus (.txt, .gz or .bz2)")
	cmd.Flags().StringVar(&out, "out", "data", "output directory")
	cmd.Flags().BoolVar(&index, "index", false, "also load the table into the Badger index")
	return cmd
}

func buildFromDump(cmd *cobra.Command, a *app, path, out string) (map[string]int, error) {
	rc, err := ingest.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	textPath := filepath.Join(out, corpusFile)
	textOut, err := os.Create(textPath)
	if err != nil {
		return nil, err
	}
	freqs, stats, err := ingest.NewProcessor(a.logger).ProcessDump(cmd.Context(), rc, textOut)
	if cerr := textOut.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d pages, %d words, clean text in %s\n", stats.Pages, stats.Words, textPath)
	return freqs, nil
}

func buildFromCorpus(cmd *cobra.Command, path string) (map[string]int, error) {
	return ingest.CorpusSource{Path: path}.Load(cmd.Context())
}
