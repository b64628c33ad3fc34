package deinflect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jpreader/model"
	"jpreader/tagdict"
)

func testDict() *tagdict.Dict {
	return tagdict.New(map[string][]string{
		"食べる":  {"v1"},
		"飲む":   {"v5m"},
		"行く":   {"v5k-s"},
		"書く":   {"v5k"},
		"高い":   {"adj-i"},
		"勉強する": {"vs-i"},
		"来る":   {"vk"},
		"猫":    {"n"},
	})
}

func findBase(results []model.DeinflectionResult, base string) *model.DeinflectionResult {
	for i := range results {
		if results[i].BaseForm == base {
			return &results[i]
		}
	}
	return nil
}

func TestRuleStrategy_PoliteProgressivePast(t *testing.T) {
	s := NewRuleStrategy(testDict())
	results := s.Deinflect(context.Background(), "食べていました")

	r := findBase(results, "食べる")
	require.NotNil(t, r, "expected 食べる among %v", results)
	assert.Equal(t, []string{"polite past", "progressive", "te-form"}, r.ReasonChain)
	require.NotNil(t, r.VerbType)
	assert.Equal(t, model.Ichidan, *r.VerbType)
	require.Len(t, r.Transformations, 3)
	assert.Equal(t, "食べていました", r.Transformations[0].From)
	assert.Equal(t, "食べている", r.Transformations[0].To)
	assert.Equal(t, "食べて", r.Transformations[1].To)
	assert.Equal(t, "食べる", r.Transformations[2].To)
}

func TestRuleStrategy_NegativePast(t *testing.T) {
	s := NewRuleStrategy(testDict())
	results := s.Deinflect(context.Background(), "飲まなかった")

	r := findBase(results, "飲む")
	require.NotNil(t, r)
	assert.Equal(t, []string{"past", "negative"}, r.ReasonChain)
	require.NotNil(t, r.VerbType)
	assert.Equal(t, model.GodanM, *r.VerbType)
}

func TestRuleStrategy_GodanTe(t *testing.T) {
	s := NewRuleStrategy(testDict())
	results := s.Deinflect(context.Background(), "書いて")

	r := findBase(results, "書く")
	require.NotNil(t, r)
	assert.Equal(t, []string{"te-form"}, r.ReasonChain)
	require.NotNil(t, r.VerbType)
	assert.Equal(t, model.GodanK, *r.VerbType)
}

func TestRuleStrategy_IkuSpecialCase(t *testing.T) {
	s := NewRuleStrategy(testDict())
	results := s.Deinflect(context.Background(), "行きます")

	r := findBase(results, "行く")
	require.NotNil(t, r)
	require.NotNil(t, r.VerbType)
	// literal special case wins over the mask-derived godan-k
	assert.Equal(t, model.IkuIrregular, *r.VerbType)
}

func TestRuleStrategy_Adjective(t *testing.T) {
	s := NewRuleStrategy(testDict())

	r := findBase(s.Deinflect(context.Background(), "高くない"), "高い")
	require.NotNil(t, r)
	assert.Equal(t, []string{"negative"}, r.ReasonChain)

	r = findBase(s.Deinflect(context.Background(), "高かった"), "高い")
	require.NotNil(t, r)
	assert.Equal(t, []string{"past"}, r.ReasonChain)
	require.NotNil(t, r.VerbType)
	assert.Equal(t, model.IAdjective, *r.VerbType)
}

func TestRuleStrategy_Suru(t *testing.T) {
	s := NewRuleStrategy(testDict())
	results := s.Deinflect(context.Background(), "勉強しました")

	r := findBase(results, "勉強する")
	require.NotNil(t, r)
	assert.Equal(t, []string{"polite past"}, r.ReasonChain)
	require.NotNil(t, r.VerbType)
	assert.Equal(t, model.SuruIrregular, *r.VerbType)
}

func TestRuleStrategy_Kuru(t *testing.T) {
	s := NewRuleStrategy(testDict())
	results := s.Deinflect(context.Background(), "こない")

	r := findBase(results, "来る")
	if r == nil {
		// こない rewrites to くる; the dictionary keys the kanji form, so
		// nothing confirms. A reading-keyed dictionary entry would.
		results = NewRuleStrategy(tagdict.New(map[string][]string{
			"くる": {"vk"},
		})).Deinflect(context.Background(), "こない")
		r = findBase(results, "くる")
	}
	require.NotNil(t, r)
	require.NotNil(t, r.VerbType)
	assert.Equal(t, model.KuruIrregular, *r.VerbType)
}

func TestRuleStrategy_NoMatchForPlainNoun(t *testing.T) {
	s := NewRuleStrategy(testDict())
	assert.Empty(t, s.Deinflect(context.Background(), "猫です"))
}

func TestRuleStrategy_MaskBlocksIncompatibleRules(t *testing.T) {
	// 食べた must resolve through the ichidan past rule, not the godan
	// continuative + anything path
	s := NewRuleStrategy(testDict())
	r := findBase(s.Deinflect(context.Background(), "食べた"), "食べる")
	require.NotNil(t, r)
	assert.Equal(t, []string{"past"}, r.ReasonChain)
}

func TestRuleStrategy_AmbiguityPreserved(t *testing.T) {
	dict := tagdict.New(map[string][]string{
		"いる": {"v1"},
		"いう": {"v5u"},
	})
	s := NewRuleStrategy(dict)
	results := s.Deinflect(context.Background(), "いって")

	// って resolves to both う and る godan rows plus the ichidan て chain;
	// every dictionary-confirmed candidate survives
	assert.NotNil(t, findBase(results, "いう"))
}
