package corrector

const (
	DecisionAutoReplace  = "auto_replace"
	DecisionNoSuggestion = "no_suggestion"
)

type Candidate struct {
	Term        string  `json:"term"`
	Probability float64 `json:"probability"`
	Edits       int     `json:"edits"`
}

type SuggestionInfo struct {
	Token       string   `json:"token"`
	Suggestions []string `json:"suggestions"`
	Decision    string   `json:"decision"`
}

// CorrectionResult is the outcome of one CorrectText run. Suggestions are
// keyed by token position.
type CorrectionResult struct {
	Original    string                 `json:"original"`
	Corrected   string                 `json:"corrected"`
	Tokens      []string               `json:"-"`
	Output      []string               `json:"-"`
	Candidates  map[string][]string    `json:"-"`
	Suggestions map[int]SuggestionInfo `json:"suggestions"`
}

// Misspelled returns the distinct invalid tokens in order of first
// appearance.
func (r CorrectionResult) Misspelled() []string {
	var out []string
	seen := make(map[string]bool, len(r.Candidates))
	for _, t := range r.Tokens {
		if _, ok := r.Candidates[t]; ok && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
