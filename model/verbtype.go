package model

// VerbType is the closed conjugation-class taxonomy. Every conjugatable
// token maps to exactly one VerbType; non-conjugatable tokens carry no
// VerbType at all (nil pointer in the result types).
type VerbType int

const (
	VerbUnknown VerbType = iota
	Ichidan
	GodanK
	GodanS
	GodanT
	GodanN
	GodanB
	GodanM
	GodanR
	GodanG
	GodanU
	SuruIrregular
	KuruIrregular
	IkuIrregular
	IAdjective
	NaAdjective
)

var verbTypeNames = map[VerbType]string{
	VerbUnknown:   "unknown",
	Ichidan:       "ichidan",
	GodanK:        "godan-k",
	GodanS:        "godan-s",
	GodanT:        "godan-t",
	GodanN:        "godan-n",
	GodanB:        "godan-b",
	GodanM:        "godan-m",
	GodanR:        "godan-r",
	GodanG:        "godan-g",
	GodanU:        "godan-u",
	SuruIrregular: "suru",
	KuruIrregular: "kuru",
	IkuIrregular:  "iku",
	IAdjective:    "i-adjective",
	NaAdjective:   "na-adjective",
}

func (v VerbType) String() string {
	if s, ok := verbTypeNames[v]; ok {
		return s
	}
	return "unknown"
}

// Ptr returns a pointer to v, for the nullable result fields.
func (v VerbType) Ptr() *VerbType { return &v }

// WordType is the bitmask space used by search to constrain which
// conjugation rules may apply to a dictionary entry.
type WordType uint16

const (
	WordGodanVerb WordType = 1 << iota
	WordIchidanVerb
	WordSuruVerb
	WordSpecialSuruVerb
	WordNounVs
	WordKuruVerb
	WordIAdjective

	// WordTypeAll matches every word type.
	WordTypeAll WordType = ^WordType(0)
)

// WordMask maps a VerbType onto its WordType bits. Total over the taxonomy:
// na-adjectives are not verb-conjugated in this mask space and map to zero,
// unknown maps to match-all.
func (v VerbType) WordMask() WordType {
	switch v {
	case Ichidan:
		return WordIchidanVerb
	case GodanK, GodanS, GodanT, GodanN, GodanB, GodanM, GodanR, GodanG, GodanU:
		return WordGodanVerb
	case SuruIrregular:
		return WordSuruVerb
	case KuruIrregular:
		return WordKuruVerb
	case IkuIrregular:
		return WordGodanVerb
	case IAdjective:
		return WordIAdjective
	case NaAdjective:
		return 0
	default:
		return WordTypeAll
	}
}
