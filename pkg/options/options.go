package options

// DefaultOptions are the corrector settings used when no option is given.
var DefaultOptions = CorrectorOptions{
	MaxSuggestions:      5,
	CustomWordFrequency: 1_000_000_000,
	NormalizeNFC:        true,
}

type CorrectorOptions struct {
	MaxSuggestions      int    // candidates reported per misspelled token, 0 = all
	CustomWordFrequency int    // count assigned to user-added words
	NormalizeNFC        bool   // NFC-normalize tokens before lookup
	Alphabet            string // overrides the Telugu alphabet when non-empty
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	out := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&out)
		}
	}
	return out
}

func WithMaxSuggestions(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		if n < 0 {
			n = 0
		}
		options.MaxSuggestions = n
	})
}

func WithCustomWordFrequency(freq int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.CustomWordFrequency = freq
	})
}

func WithoutNormalization() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.NormalizeNFC = false
	})
}

// WithAlphabet replaces the alphabet used for insertions and substitutions.
func WithAlphabet(chars string) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Alphabet = chars
	})
}
