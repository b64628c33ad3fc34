// Package classify maps part-of-speech information onto the closed
// verb/adjective taxonomy in package model. Every entry point is total:
// unmatched input degrades to a defined default, never an error.
package classify

import (
	"strings"

	"jpreader/model"
)

// tagEntry is one row of the short-dictionary-tag table. Order matters:
// first match wins, so irregular sub-tags (v5k-s) sit above their generic
// row (v5k).
type tagEntry struct {
	tag string
	vt  model.VerbType
}

var tagTable = []tagEntry{
	{"v5k-s", model.IkuIrregular},
	{"v1", model.Ichidan},
	{"v1-s", model.Ichidan},
	{"v5k", model.GodanK},
	{"v5s", model.GodanS},
	{"v5t", model.GodanT},
	{"v5n", model.GodanN},
	{"v5b", model.GodanB},
	{"v5m", model.GodanM},
	{"v5r", model.GodanR},
	{"v5r-i", model.GodanR},
	{"v5aru", model.GodanR},
	{"v5g", model.GodanG},
	{"v5u", model.GodanU},
	{"v5u-s", model.GodanU},
	{"vs", model.SuruIrregular},
	{"vs-i", model.SuruIrregular},
	{"vs-s", model.SuruIrregular},
	{"vk", model.KuruIrregular},
	{"adj-i", model.IAdjective},
	{"adj-ix", model.IAdjective},
	{"adj-na", model.NaAdjective},
}

// FromTags classifies a set of short dictionary tags (v1, v5k-s, adj-i, …).
// The table is walked in priority order and the first tag match wins; tag
// sets with no match classify as unknown.
func FromTags(tags []string) model.VerbType {
	for _, e := range tagTable {
		for _, t := range tags {
			if t == e.tag {
				return e.vt
			}
		}
	}
	return model.VerbUnknown
}

// posKey is a (level2, level3) pair from the tokenizer's POS taxonomy.
// Level 3 carries the conjugation-class label for conjugatable words.
type posKey struct {
	level2 string
	level3 string
}

var verbPOSTable = map[posKey]model.VerbType{
	{"自立", "一段"}:        model.Ichidan,
	{"自立", "五段・カ行イ音便"}:  model.GodanK,
	{"自立", "五段・カ行促音便"}:  model.IkuIrregular,
	{"自立", "五段・サ行"}:     model.GodanS,
	{"自立", "五段・タ行"}:     model.GodanT,
	{"自立", "五段・ナ行"}:     model.GodanN,
	{"自立", "五段・バ行"}:     model.GodanB,
	{"自立", "五段・マ行"}:     model.GodanM,
	{"自立", "五段・ラ行"}:     model.GodanR,
	{"自立", "五段・ガ行"}:     model.GodanG,
	{"自立", "五段・ワ行促音便"}:  model.GodanU,
	{"自立", "五段・ワ行ウ音便"}:  model.GodanU,
	{"自立", "サ変・スル"}:     model.SuruIrregular,
	{"自立", "サ変・−スル"}:    model.SuruIrregular,
	{"自立", "カ変・来ル"}:     model.KuruIrregular,
	{"自立", "カ変・クル"}:     model.KuruIrregular,
}

// FromPOS classifies a token by its POS levels. Verbs use the fixed
// (level2, level3) table above; a verb with an unlisted pair classifies as
// godan-u, the most common row, rather than unknown. Adjectives split on
// level2. Any other level1 is not conjugatable and yields nil.
func FromPOS(tok model.Token) *model.VerbType {
	switch tok.POS1 {
	case "動詞":
		if vt, ok := verbPOSTable[posKey{tok.POS2, tok.POS3}]; ok {
			return vt.Ptr()
		}
		return model.GodanU.Ptr()
	case "形容詞":
		switch tok.POS2 {
		case "自立":
			return model.IAdjective.Ptr()
		case "形容動詞語幹":
			return model.NaAdjective.Ptr()
		}
		return model.IAdjective.Ptr()
	}
	return nil
}

// godanFinal keys mask-derived godan classification on the final character
// of the word.
var godanFinal = map[rune]model.VerbType{
	'く': model.GodanK,
	'ぐ': model.GodanG,
	'す': model.GodanS,
	'つ': model.GodanT,
	'ぬ': model.GodanN,
	'ぶ': model.GodanB,
	'む': model.GodanM,
	'る': model.GodanR,
	'う': model.GodanU,
}

// FromWord derives the VerbType for a bare dictionary-form word given an
// externally supplied WordType mask, typically recovered from search
// results rather than a live token. Literal special cases take precedence
// over the mask; mask-derived godan classification is keyed on the final
// character.
func FromWord(word string, mask model.WordType) model.VerbType {
	switch word {
	case "来る", "くる":
		return model.KuruIrregular
	case "行く", "いく":
		return model.IkuIrregular
	}
	if strings.HasSuffix(word, "する") {
		return model.SuruIrregular
	}
	if mask&model.WordIchidanVerb != 0 {
		return model.Ichidan
	}
	if mask&model.WordKuruVerb != 0 {
		return model.KuruIrregular
	}
	if mask&(model.WordSuruVerb|model.WordSpecialSuruVerb|model.WordNounVs) != 0 {
		return model.SuruIrregular
	}
	if mask&model.WordIAdjective != 0 {
		return model.IAdjective
	}
	if mask&model.WordGodanVerb != 0 {
		runes := []rune(word)
		if len(runes) > 0 {
			if vt, ok := godanFinal[runes[len(runes)-1]]; ok {
				return vt
			}
		}
		return model.GodanU
	}
	return model.VerbUnknown
}

// MaskForTags folds a tag set into the WordType bitmask used to gate
// deinflection rules. Unrecognized tags contribute no bits.
func MaskForTags(tags []string) model.WordType {
	var mask model.WordType
	for _, t := range tags {
		switch {
		case t == "v1" || t == "v1-s":
			mask |= model.WordIchidanVerb
		case t == "vs-s":
			mask |= model.WordSpecialSuruVerb
		case t == "vs-i":
			mask |= model.WordSuruVerb
		case t == "vs":
			mask |= model.WordNounVs
		case t == "vk":
			mask |= model.WordKuruVerb
		case t == "adj-i" || t == "adj-ix":
			mask |= model.WordIAdjective
		case strings.HasPrefix(t, "v5"):
			mask |= model.WordGodanVerb
		}
	}
	return mask
}

// IsConjugatable reports whether a tag set describes a word that conjugates
// at all (verbs and adjectives).
func IsConjugatable(tags []string) bool {
	for _, t := range tags {
		if strings.HasPrefix(t, "v") || strings.HasPrefix(t, "adj") {
			return true
		}
	}
	return false
}

// IsVerb reports whether any tag begins with "v".
func IsVerb(tags []string) bool {
	for _, t := range tags {
		if strings.HasPrefix(t, "v") {
			return true
		}
	}
	return false
}

// IsIAdjective reports whether the tag set marks an i-adjective.
func IsIAdjective(tags []string) bool {
	for _, t := range tags {
		if t == "adj-i" || t == "adj-ix" {
			return true
		}
	}
	return false
}

// IsNaAdjective reports whether the tag set marks a na-adjective.
func IsNaAdjective(tags []string) bool {
	for _, t := range tags {
		if t == "adj-na" {
			return true
		}
	}
	return false
}
