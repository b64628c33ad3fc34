// Package deinflect recovers dictionary base forms for inflected words.
//
// Two independent strategies exist behind a common interface: one driven by
// the tokenizer's own lemmatization, one by an explicit conjugation rule
// table checked against a tag dictionary. The assembler concatenates their
// outputs without merging or deduplication; duplicate base forms across
// strategies are a known, accepted ambiguity.
package deinflect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"jpreader/kana"
	"jpreader/metrics"
	"jpreader/model"
)

// Strategy is one way of producing deinflection candidates for a word that
// has already passed the assembler's script checks.
type Strategy interface {
	Name() string
	Deinflect(ctx context.Context, word string) []model.DeinflectionResult
}

// Deinflector runs the romaji pre-pass and input rejection, then fans out
// to its strategies and concatenates their results in order.
type Deinflector struct {
	strategies []Strategy
	log        *slog.Logger
	collect    metrics.Collector
}

// New wires a Deinflector. log and collect may be nil.
func New(log *slog.Logger, collect metrics.Collector, strategies ...Strategy) *Deinflector {
	if log == nil {
		log = slog.Default()
	}
	if collect == nil {
		collect = metrics.Nop{}
	}
	return &Deinflector{strategies: strategies, log: log, collect: collect}
}

// fullwidthR is rejected alongside ASCII letters.
const fullwidthR = 'ｒ'

// Deinflect produces zero or more base-form candidates for word. Words with
// Latin letters are first run through romaji conversion; anything that still
// contains an ASCII letter afterwards, contains the fullwidth-r marker or is
// a single character cannot be deinflected and yields no results. Rejection
// and internal failure are both observable only as an empty result.
func (d *Deinflector) Deinflect(ctx context.Context, word string) []model.DeinflectionResult {
	start := time.Now()
	w := word
	if kana.HasRomaji(w) {
		w = kana.RomajiToHiragana(w)
	}
	if utf8.RuneCountInString(w) <= 1 {
		d.collect.ObserveDegradation("deinflect", "input-rejected")
		return nil
	}
	if strings.ContainsFunc(w, func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == fullwidthR
	}) {
		d.collect.ObserveDegradation("deinflect", "input-rejected")
		return nil
	}

	var results []model.DeinflectionResult
	for _, s := range d.strategies {
		rs := s.Deinflect(ctx, w)
		for i := range rs {
			rs[i].OriginalForm = word
		}
		results = append(results, rs...)
	}
	d.collect.ObserveAnalysis("deinflect", time.Since(start), len(results))
	return results
}

// composeReason builds the human-readable reason for a token-derived step
// from the conjugation class and form, falling back to "base form" when
// either is missing.
func composeReason(conjType, conjForm string) string {
	if conjType != "" && conjForm != "" {
		return fmt.Sprintf("%s・%s", conjType, conjForm)
	}
	return "base form"
}
