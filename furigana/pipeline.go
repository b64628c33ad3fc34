// Package furigana turns free Japanese text into display segments carrying
// phonetic readings aligned to the original character spans.
package furigana

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"jpreader/kana"
	"jpreader/metrics"
	"jpreader/model"
	"jpreader/tokenize"
)

// Pipeline produces FuriganaText from free text via the tokenizer.
type Pipeline struct {
	tz      tokenize.Tokenizer
	log     *slog.Logger
	collect metrics.Collector
}

// NewPipeline wires a pipeline over a tokenizer. log and collect may be nil.
func NewPipeline(tz tokenize.Tokenizer, log *slog.Logger, collect metrics.Collector) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	if collect == nil {
		collect = metrics.Nop{}
	}
	return &Pipeline{tz: tz, log: log, collect: collect}
}

// Analyze tokenizes text and assembles the furigana segment sequence.
// Concatenating the segment texts in order reproduces the input exactly.
// Tokenizer failure degrades to a single segment spanning the whole input
// with no furigana; it is never surfaced as an error.
func (p *Pipeline) Analyze(ctx context.Context, text string) model.FuriganaText {
	start := time.Now()
	tokens, err := p.tz.Tokenize(ctx, text)
	if err != nil || len(tokens) == 0 {
		if err != nil {
			p.log.Warn("tokenization failed, using fallback segment", "error", err)
			p.collect.ObserveDegradation("furigana", "oracle-failure")
		}
		return model.FuriganaText{
			OriginalText: text,
			Segments: []model.FuriganaSegment{{
				Text:       text,
				IsKanji:    kana.ContainsKanji(text),
				StartIndex: 0,
				EndIndex:   utf8.RuneCountInString(text),
			}},
		}
	}

	segments := make([]model.FuriganaSegment, 0, len(tokens))
	for _, tok := range tokens {
		segments = append(segments, segmentFor(tok))
	}
	segments, missed := Realign(segments, text)
	if missed > 0 {
		p.log.Warn("segments kept stale offsets after realignment",
			"missed", missed, "total", len(segments))
		p.collect.ObserveDegradation("furigana", "alignment-miss")
	}
	p.collect.ObserveAnalysis("furigana", time.Since(start), len(segments))
	return model.FuriganaText{OriginalText: text, Segments: segments}
}

// segmentFor builds one segment with placeholder offsets; Realign fixes
// them afterwards.
func segmentFor(tok model.Token) model.FuriganaSegment {
	hasKanji := kana.ContainsKanji(tok.Surface)
	reading := kana.ToHiragana(tok.Reading)
	seg := model.FuriganaSegment{
		Text:       tok.Surface,
		IsKanji:    hasKanji,
		StartIndex: 0,
		EndIndex:   utf8.RuneCountInString(tok.Surface),
	}
	if hasKanji && reading != "" && reading != tok.Surface {
		seg.Furigana = TrimOkurigana(tok.Surface, reading)
	}
	return seg
}

// WordReading returns the best-effort phonetic reading of a single word,
// taken from the first token only and without okurigana trimming: the
// display context is a single click target, not a sentence. Returns the
// empty string when tokenization fails or yields nothing.
func (p *Pipeline) WordReading(ctx context.Context, word string) string {
	tokens, err := p.tz.Tokenize(ctx, word)
	if err != nil {
		p.collect.ObserveDegradation("word-reading", "oracle-failure")
		return ""
	}
	if len(tokens) == 0 {
		return ""
	}
	return kana.ToHiragana(tokens[0].Reading)
}
