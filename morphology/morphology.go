// Package morphology produces a word-level morphology summary for display.
package morphology

import (
	"context"
	"log/slog"
	"strings"

	"jpreader/classify"
	"jpreader/metrics"
	"jpreader/model"
	"jpreader/tokenize"
)

// Analyzer summarizes the morphology of single words.
type Analyzer struct {
	tz      tokenize.Tokenizer
	log     *slog.Logger
	collect metrics.Collector
}

// NewAnalyzer wires an Analyzer. log and collect may be nil.
func NewAnalyzer(tz tokenize.Tokenizer, log *slog.Logger, collect metrics.Collector) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	if collect == nil {
		collect = metrics.Nop{}
	}
	return &Analyzer{tz: tz, log: log, collect: collect}
}

// Analyze returns the morphology of word based on its first token only.
// Multi-token words lose information about subsequent tokens; that is a
// known limitation of the first-token policy, kept deliberately. Returns
// nil when tokenization fails or yields no tokens.
func (a *Analyzer) Analyze(ctx context.Context, word string) *model.MorphologyResult {
	tokens, err := a.tz.Tokenize(ctx, word)
	if err != nil {
		a.log.Warn("tokenization failed during morphology analysis", "error", err)
		a.collect.ObserveDegradation("morphology", "oracle-failure")
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}
	tok := tokens[0]
	base := tok.BaseForm
	if base == "" {
		base = tok.Surface
	}
	return &model.MorphologyResult{
		OriginalForm:    word,
		BaseForm:        base,
		ConjugationType: joinNonEmpty("・", tok.POS3, tok.InflectionForm),
		PartOfSpeech:    joinNonEmpty("・", tok.POS1, tok.POS2),
		VerbType:        classify.FromPOS(tok),
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
