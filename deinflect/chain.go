package deinflect

import (
	"context"
	"strings"
	"unicode/utf8"

	"jpreader/classify"
	"jpreader/model"
	"jpreader/tagdict"
)

// maxChainDepth bounds rule application; real conjugation chains stay well
// under this.
const maxChainDepth = 8

// RuleStrategy deinflects by iterative suffix rewriting against the fixed
// conjugation rule table, confirming candidates against a tag dictionary.
type RuleStrategy struct {
	dict *tagdict.Dict
}

// NewRuleStrategy wires the rule-chain strategy over a tag dictionary.
func NewRuleStrategy(dict *tagdict.Dict) *RuleStrategy {
	return &RuleStrategy{dict: dict}
}

func (s *RuleStrategy) Name() string { return "rule-chain" }

type chainState struct {
	form    string
	mask    model.WordType
	steps   []model.DeinflectionStep
	reasons []string
}

// Deinflect walks the rule table breadth-first from the word, emitting a
// result whenever a rewritten form exists in the tag dictionary with a word
// type compatible with the rules that produced it. All confirmed candidates
// are returned; ambiguity across rule paths is preserved.
func (s *RuleStrategy) Deinflect(ctx context.Context, word string) []model.DeinflectionResult {
	queue := []chainState{{form: word, mask: model.WordTypeAll}}
	seen := map[string]bool{}
	var results []model.DeinflectionResult

	for depth := 0; depth < maxChainDepth && len(queue) > 0; depth++ {
		select {
		case <-ctx.Done():
			return results
		default:
		}
		var next []chainState
		for _, st := range queue {
			for _, r := range ruleTable {
				if st.mask&r.rulesIn == 0 {
					continue
				}
				if r.kanaIn == "" && len(st.steps) > 0 {
					continue
				}
				if !strings.HasSuffix(st.form, r.kanaIn) {
					continue
				}
				stem := st.form[:len(st.form)-len(r.kanaIn)]
				if stem == "" && r.kanaOut == "" {
					continue
				}
				form := stem + r.kanaOut
				if form == st.form {
					continue
				}
				key := form + "/" + r.id
				if seen[key] {
					continue
				}
				seen[key] = true

				steps := append(append([]model.DeinflectionStep(nil), st.steps...), model.DeinflectionStep{
					From:   st.form,
					To:     form,
					Reason: r.reason,
					RuleID: r.id,
				})
				reasons := append(append([]string(nil), st.reasons...), r.reason)
				cand := chainState{form: form, mask: r.rulesOut, steps: steps, reasons: reasons}

				if res, ok := s.confirm(word, cand); ok {
					results = append(results, res)
				}
				next = append(next, cand)
			}
		}
		queue = next
	}
	return results
}

// confirm checks a rewritten form against the tag dictionary and builds the
// result when the dictionary's word type intersects the chain's mask.
func (s *RuleStrategy) confirm(word string, st chainState) (model.DeinflectionResult, bool) {
	if utf8.RuneCountInString(st.form) <= 1 {
		return model.DeinflectionResult{}, false
	}
	tags := s.dict.VerbTags(st.form)
	if len(tags) == 0 {
		return model.DeinflectionResult{}, false
	}
	mask := classify.MaskForTags(tags)
	if st.mask&mask == 0 {
		return model.DeinflectionResult{}, false
	}
	vt := classify.FromWord(st.form, mask)
	return model.DeinflectionResult{
		OriginalForm:    word,
		BaseForm:        st.form,
		ReasonChain:     st.reasons,
		VerbType:        vt.Ptr(),
		Transformations: st.steps,
	}, true
}
