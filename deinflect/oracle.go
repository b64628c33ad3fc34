package deinflect

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"jpreader/classify"
	"jpreader/metrics"
	"jpreader/model"
	"jpreader/tokenize"
)

// tokenizerRuleID marks steps recovered from the tokenizer's lemmatization
// rather than from an explicit conjugation rule.
const tokenizerRuleID = "tokenizer"

// TokenStrategy deinflects through the tokenizer: every token whose base
// form differs from the input contributes one candidate.
type TokenStrategy struct {
	tz      tokenize.Tokenizer
	log     *slog.Logger
	collect metrics.Collector
}

// NewTokenStrategy wires the tokenizer-backed strategy. log and collect may
// be nil.
func NewTokenStrategy(tz tokenize.Tokenizer, log *slog.Logger, collect metrics.Collector) *TokenStrategy {
	if log == nil {
		log = slog.Default()
	}
	if collect == nil {
		collect = metrics.Nop{}
	}
	return &TokenStrategy{tz: tz, log: log, collect: collect}
}

func (s *TokenStrategy) Name() string { return "tokenizer" }

// Deinflect tokenizes the word and emits one result per token carrying a
// usable base form. Tokenizer failure degrades to no results.
func (s *TokenStrategy) Deinflect(ctx context.Context, word string) []model.DeinflectionResult {
	tokens, err := s.tz.Tokenize(ctx, word)
	if err != nil {
		s.log.Warn("tokenization failed during deinflection", "error", err)
		s.collect.ObserveDegradation("deinflect", "oracle-failure")
		return nil
	}
	var results []model.DeinflectionResult
	for _, tok := range tokens {
		base := tok.BaseForm
		if base == "" || base == word || base == tok.Surface {
			continue
		}
		if utf8.RuneCountInString(base) <= 1 {
			continue
		}
		reason := composeReason(tok.POS3, tok.InflectionForm)
		r := model.DeinflectionResult{
			OriginalForm: word,
			BaseForm:     base,
			ReasonChain:  []string{reason},
			VerbType:     classify.FromPOS(tok),
		}
		if base != tok.Surface {
			r.Transformations = []model.DeinflectionStep{{
				From:   tok.Surface,
				To:     base,
				Reason: reason,
				RuleID: tokenizerRuleID,
			}}
		}
		results = append(results, r)
	}
	return results
}
