package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"telspell/internal/corrector"
	"telspell/pkg/options"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")).Strikethrough(true)
	fixStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#16858E")).Padding(0, 1)
)

func newCheckCmd() *cobra.Command {
	var (
		file string
		top  int
	)
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Correct text given as arguments or read from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if file != "" {
				data, err := readInput(file)
				if err != nil {
					return err
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				return errors.New("nothing to check: pass text or --file")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			sc, err := a.corrector(cmd.Context(), options.WithMaxSuggestions(top))
			if err != nil {
				return err
			}
			renderReport(cmd.OutOrStdout(), sc.CorrectText(text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read text from file (- for stdin)")
	cmd.Flags().IntVar(&top, "top", 5, "suggestions shown per misspelled word, 0 for all")
	return cmd
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// renderReport prints the original and corrected text followed by one line
// per distinct misspelled token with its ranked suggestions.
func renderReport(w io.Writer, res corrector.CorrectionResult) {
	fmt.Fprintln(w, titleStyle.Render("Original"))
	fmt.Fprintln(w, res.Original)
	fmt.Fprintln(w, titleStyle.Render("Corrected"))
	fmt.Fprintln(w, res.Corrected)

	misspelled := res.Misspelled()
	if len(misspelled) == 0 {
		fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d tokens, no misspellings", len(res.Tokens))))
		return
	}

	byToken := make(map[string]corrector.SuggestionInfo, len(misspelled))
	for _, info := range res.Suggestions {
		byToken[info.Token] = info
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Suggestions"))
	for _, tok := range misspelled {
		info := byToken[tok]
		line := wrongStyle.Render(tok) + " → "
		if len(info.Suggestions) == 0 {
			line += mutedStyle.Render("(no suggestion)")
		} else {
			line += fixStyle.Render(strings.Join(info.Suggestions, ", ")) +
				mutedStyle.Render("  recommended: "+info.Suggestions[0])
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("%d tokens, %d misspelled", len(res.Tokens), len(misspelled))))
}
