package lexicon

import (
	"context"
	"math/rand/v2"
)

// sampleWords are correctly spelled Telugu words used when no real frequency
// table is available.
var sampleWords = []string{
	// common
	"తెలుగు", "భాష", "దేశం", "ప్రపంచ", "విద్యార్థి", "విద్య", "విద్యా",
	"ఉపాధ్యాయ", "ఉపాధ్యాయుడు", "ఉపాధ్యాయురాలు", "పాఠశాల", "పాఠం", "పాఠశాలా",
	"కళాశాల", "కళ", "విశ్వవిద్యాలయం", "విశ్వవిద్యాలయ",
	"పుస్తకం", "పుస్తకము", "లేఖన", "లేఖనం", "పరీక్ష", "పరీక్షలు", "ఫలితాలు", "ఫలితం",
	// technology
	"కంప్యూటర్", "కంప్యూటరు", "ప్రోగ్రామ్", "ప్రోగ్రామ", "ప్రోగ్రామింగ",
	"సాఫ్ట్‌వేర్", "హార్డ్‌వేర్", "ఇంటర్నెట్", "మొబైల్",
	// places
	"భారతదేశం", "భారతం", "తెలంగాణ", "తెలంగాణా", "ఆంధ్రప్రదేశ్", "ఆంధ్రప్రదేశం",
	"హైదరాబాద్", "హైదరాబాదు", "చెన్నై", "చెన్నైయ్", "బెంగళూరు", "బెంగుళూరు",
	"ముంబై", "ముంబయి", "దిల్లీ", "కోల్కతా", "కోల్‌కతా",
	// verbs
	"చదువు", "చదివింది", "రాయి", "వ్రాయు", "మాట్లాడు", "వినుము", "చూడు", "తినుము",
}

const sampleSeed = 42

// SampleSource seeds a small vocabulary with deterministic counts in
// [100, 1000).
type SampleSource struct{}

func (SampleSource) Name() string { return "sample" }

func (SampleSource) Load(context.Context) (map[string]int, error) {
	return SampleFrequencies(), nil
}

// SampleFrequencies returns the built-in table. Repeated calls return equal
// maps.
func SampleFrequencies() map[string]int {
	rng := rand.New(rand.NewPCG(sampleSeed, sampleSeed))
	out := make(map[string]int, len(sampleWords))
	for _, w := range sampleWords {
		out[w] = 100 + rng.IntN(900)
	}
	return out
}
