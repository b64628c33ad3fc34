package furigana

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpreader/model"
	"jpreader/tokenize"
)

func TestPipeline_Analyze(t *testing.T) {
	fake := &tokenize.Fake{Responses: map[string][]model.Token{
		"友達と遊ぶ": {
			{Surface: "友達", BaseForm: "友達", Reading: "トモダチ", POS1: "名詞"},
			{Surface: "と", BaseForm: "と", Reading: "ト", POS1: "助詞"},
			{Surface: "遊ぶ", BaseForm: "遊ぶ", Reading: "アソブ", POS1: "動詞"},
		},
	}}
	p := NewPipeline(fake, nil, nil)

	ft := p.Analyze(context.Background(), "友達と遊ぶ")
	require.Len(t, ft.Segments, 3)
	assert.Equal(t, "友達と遊ぶ", ft.OriginalText)

	assert.Equal(t, "友達", ft.Segments[0].Text)
	assert.Equal(t, "ともだち", ft.Segments[0].Furigana)
	assert.True(t, ft.Segments[0].IsKanji)
	assert.Equal(t, 0, ft.Segments[0].StartIndex)
	assert.Equal(t, 2, ft.Segments[0].EndIndex)

	assert.Equal(t, "と", ft.Segments[1].Text)
	assert.False(t, ft.Segments[1].HasFurigana())
	assert.False(t, ft.Segments[1].IsKanji)

	// single leading kanji: okurigana trimmed off the reading
	assert.Equal(t, "遊ぶ", ft.Segments[2].Text)
	assert.Equal(t, "あそ", ft.Segments[2].Furigana)
	assert.Equal(t, 3, ft.Segments[2].StartIndex)
	assert.Equal(t, 5, ft.Segments[2].EndIndex)
}

func TestPipeline_RoundTrip(t *testing.T) {
	fake := &tokenize.Fake{Responses: map[string][]model.Token{
		"日本語を勉強する": {
			{Surface: "日本語", Reading: "ニホンゴ", POS1: "名詞"},
			{Surface: "を", Reading: "ヲ", POS1: "助詞"},
			{Surface: "勉強", Reading: "ベンキョウ", POS1: "名詞"},
			{Surface: "する", Reading: "スル", POS1: "動詞"},
		},
	}}
	p := NewPipeline(fake, nil, nil)

	ft := p.Analyze(context.Background(), "日本語を勉強する")
	var b strings.Builder
	for _, seg := range ft.Segments {
		b.WriteString(seg.Text)
	}
	assert.Equal(t, "日本語を勉強する", b.String())
}

func TestPipeline_Idempotent(t *testing.T) {
	fake := &tokenize.Fake{Responses: map[string][]model.Token{
		"水を飲む": {
			{Surface: "水", Reading: "ミズ", POS1: "名詞"},
			{Surface: "を", Reading: "ヲ", POS1: "助詞"},
			{Surface: "飲む", Reading: "ノム", POS1: "動詞"},
		},
	}}
	p := NewPipeline(fake, nil, nil)

	first := p.Analyze(context.Background(), "水を飲む")
	second := p.Analyze(context.Background(), "水を飲む")
	assert.Equal(t, first, second)
}

func TestPipeline_NoReadingSegment(t *testing.T) {
	fake := &tokenize.Fake{Responses: map[string][]model.Token{
		"𩸽": {{Surface: "𩸽", POS1: "名詞"}},
	}}
	p := NewPipeline(fake, nil, nil)

	ft := p.Analyze(context.Background(), "𩸽")
	require.Len(t, ft.Segments, 1)
	assert.False(t, ft.Segments[0].HasFurigana())
}

func TestPipeline_OracleFailureFallback(t *testing.T) {
	fake := &tokenize.Fake{Err: errors.New("tokenizer exploded")}
	p := NewPipeline(fake, nil, nil)

	ft := p.Analyze(context.Background(), "漢字です")
	require.Len(t, ft.Segments, 1)
	seg := ft.Segments[0]
	assert.Equal(t, "漢字です", seg.Text)
	assert.False(t, seg.HasFurigana())
	assert.True(t, seg.IsKanji)
	assert.Equal(t, 0, seg.StartIndex)
	assert.Equal(t, 4, seg.EndIndex)
}

func TestWordReading(t *testing.T) {
	fake := &tokenize.Fake{Responses: map[string][]model.Token{
		"見る": {
			{Surface: "見る", BaseForm: "見る", Reading: "ミル", POS1: "動詞"},
			{Surface: "る", POS1: "助動詞"},
		},
	}}
	p := NewPipeline(fake, nil, nil)

	// first token only, no okurigana trimming
	assert.Equal(t, "みる", p.WordReading(context.Background(), "見る"))
	assert.Equal(t, "", p.WordReading(context.Background(), "何もない"))
}

func TestWordReading_OracleFailure(t *testing.T) {
	fake := &tokenize.Fake{Err: errors.New("down")}
	p := NewPipeline(fake, nil, nil)
	assert.Equal(t, "", p.WordReading(context.Background(), "見る"))
}
