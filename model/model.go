package model

// Token represents a single morpheme produced by the tokenizer.
//
// Optional attributes (reading, POS levels, inflection form) are plain
// strings where the empty string means "no value". The tokenizer's own
// missing-value sentinel is translated to the empty string at the tokenizer
// boundary; nothing outside package tokenize compares against it.
type Token struct {
	Surface        string `json:"surface"`
	BaseForm       string `json:"base_form,omitempty"`
	Reading        string `json:"reading,omitempty"`
	POS1           string `json:"pos1,omitempty"`
	POS2           string `json:"pos2,omitempty"`
	POS3           string `json:"pos3,omitempty"`
	InflectionForm string `json:"inflection_form,omitempty"`
}

// DeinflectionStep is one atomic transformation applied while recovering a
// dictionary form.
type DeinflectionStep struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
	RuleID string `json:"rule_id"`
}

// DeinflectionResult is one candidate base form for an inflected word.
// A single input may produce several results; ambiguity is preserved as-is.
type DeinflectionResult struct {
	OriginalForm    string             `json:"original_form"`
	BaseForm        string             `json:"base_form"`
	ReasonChain     []string           `json:"reason_chain,omitempty"`
	VerbType        *VerbType          `json:"verb_type,omitempty"`
	Transformations []DeinflectionStep `json:"transformations,omitempty"`
}

// FuriganaSegment is one display segment of analyzed text.
//
// StartIndex and EndIndex are half-open rune offsets into the original
// string the segment was produced from. Rune (UTF-32 code unit) indexing is
// part of the contract: byte offsets would shift under multi-byte kana and
// UTF-16 offsets are unsafe under surrogate pairs.
type FuriganaSegment struct {
	Text       string `json:"text"`
	Furigana   string `json:"furigana,omitempty"`
	IsKanji    bool   `json:"is_kanji"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// HasFurigana reports whether the segment carries a reading.
func (s FuriganaSegment) HasFurigana() bool { return s.Furigana != "" }

// FuriganaText is the full segment sequence for one input string.
// Immutable once produced.
type FuriganaText struct {
	OriginalText string            `json:"original_text"`
	Segments     []FuriganaSegment `json:"segments"`
}

// MorphologyResult describes the morphology of a single word.
type MorphologyResult struct {
	OriginalForm    string    `json:"original_form"`
	BaseForm        string    `json:"base_form"`
	ConjugationType string    `json:"conjugation_type,omitempty"`
	PartOfSpeech    string    `json:"part_of_speech,omitempty"`
	VerbType        *VerbType `json:"verb_type,omitempty"`
}
