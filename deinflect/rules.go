package deinflect

import "jpreader/model"

// rule is one suffix rewrite in the legacy conjugation table. A rule
// applies to a form when the form ends in kanaIn and the form's current
// WordType mask intersects rulesIn; the produced form carries rulesOut as
// its mask. Chains terminate when the tag dictionary confirms the produced
// form as a real base form compatible with the mask.
type rule struct {
	id       string
	kanaIn   string
	kanaOut  string
	rulesIn  model.WordType
	rulesOut model.WordType
	reason   string
}

const (
	mGodan   = model.WordGodanVerb
	mIchidan = model.WordIchidanVerb
	mSuru    = model.WordSuruVerb | model.WordSpecialSuruVerb | model.WordNounVs
	mKuru    = model.WordKuruVerb
	mAdj     = model.WordIAdjective
	mAll     = model.WordTypeAll
)

// ruleTable is ordered; earlier rules are tried first at each expansion, so
// longer and more specific suffixes precede the short generic ones.
var ruleTable = []rule{
	// polite past negative
	{"masen-deshita", "ませんでした", "ます", mAll, mAll, "polite past negative"},

	// polite, per godan row / ichidan / irregulars
	{"masu", "います", "う", mGodan, mGodan, "polite"},
	{"masu", "きます", "く", mGodan, mGodan, "polite"},
	{"masu", "ぎます", "ぐ", mGodan, mGodan, "polite"},
	{"masu", "します", "す", mGodan, mGodan, "polite"},
	{"masu", "ちます", "つ", mGodan, mGodan, "polite"},
	{"masu", "にます", "ぬ", mGodan, mGodan, "polite"},
	{"masu", "びます", "ぶ", mGodan, mGodan, "polite"},
	{"masu", "みます", "む", mGodan, mGodan, "polite"},
	{"masu", "ります", "る", mGodan, mGodan, "polite"},
	{"masu", "します", "する", mSuru, mSuru, "polite"},
	{"masu", "きます", "くる", mKuru, mKuru, "polite"},
	{"masu", "ます", "る", mIchidan, mIchidan, "polite"},

	// polite past
	{"mashita", "いました", "う", mGodan, mGodan, "polite past"},
	{"mashita", "きました", "く", mGodan, mGodan, "polite past"},
	{"mashita", "ぎました", "ぐ", mGodan, mGodan, "polite past"},
	{"mashita", "しました", "す", mGodan, mGodan, "polite past"},
	{"mashita", "ちました", "つ", mGodan, mGodan, "polite past"},
	{"mashita", "にました", "ぬ", mGodan, mGodan, "polite past"},
	{"mashita", "びました", "ぶ", mGodan, mGodan, "polite past"},
	{"mashita", "みました", "む", mGodan, mGodan, "polite past"},
	{"mashita", "りました", "る", mGodan, mGodan, "polite past"},
	{"mashita", "しました", "する", mSuru, mSuru, "polite past"},
	{"mashita", "きました", "くる", mKuru, mKuru, "polite past"},
	{"mashita", "ました", "る", mIchidan, mIchidan, "polite past"},

	// polite negative
	{"masen", "いません", "う", mGodan, mGodan, "polite negative"},
	{"masen", "きません", "く", mGodan, mGodan, "polite negative"},
	{"masen", "ぎません", "ぐ", mGodan, mGodan, "polite negative"},
	{"masen", "しません", "す", mGodan, mGodan, "polite negative"},
	{"masen", "ちません", "つ", mGodan, mGodan, "polite negative"},
	{"masen", "にません", "ぬ", mGodan, mGodan, "polite negative"},
	{"masen", "びません", "ぶ", mGodan, mGodan, "polite negative"},
	{"masen", "みません", "む", mGodan, mGodan, "polite negative"},
	{"masen", "りません", "る", mGodan, mGodan, "polite negative"},
	{"masen", "しません", "する", mSuru, mSuru, "polite negative"},
	{"masen", "きません", "くる", mKuru, mKuru, "polite negative"},
	{"masen", "ません", "る", mIchidan, mIchidan, "polite negative"},

	// polite volitional
	{"mashou", "ましょう", "ます", mAll, mAll, "polite volitional"},

	// progressive auxiliary: strip いる/contractions down to the te-form
	{"te-iru", "ている", "て", mIchidan, mAll, "progressive"},
	{"te-iru", "でいる", "で", mIchidan, mAll, "progressive"},
	{"te-iru", "てる", "て", mIchidan, mAll, "progressive"},

	// -tara conditional
	{"tara", "いたら", "く", mGodan, mGodan, "-tara conditional"},
	{"tara", "いだら", "ぐ", mGodan, mGodan, "-tara conditional"},
	{"tara", "したら", "す", mGodan, mGodan, "-tara conditional"},
	{"tara", "ったら", "つ", mGodan, mGodan, "-tara conditional"},
	{"tara", "ったら", "る", mGodan, mGodan, "-tara conditional"},
	{"tara", "ったら", "う", mGodan, mGodan, "-tara conditional"},
	{"tara", "んだら", "ぬ", mGodan, mGodan, "-tara conditional"},
	{"tara", "んだら", "ぶ", mGodan, mGodan, "-tara conditional"},
	{"tara", "んだら", "む", mGodan, mGodan, "-tara conditional"},
	{"tara", "したら", "する", mSuru, mSuru, "-tara conditional"},
	{"tara", "きたら", "くる", mKuru, mKuru, "-tara conditional"},
	{"tara", "たら", "る", mIchidan, mIchidan, "-tara conditional"},
	{"tara", "かったら", "い", mAdj, mAdj, "-tara conditional"},

	// past
	{"past", "いた", "く", mGodan, mGodan, "past"},
	{"past", "いだ", "ぐ", mGodan, mGodan, "past"},
	{"past", "した", "す", mGodan, mGodan, "past"},
	{"past", "った", "つ", mGodan, mGodan, "past"},
	{"past", "った", "る", mGodan, mGodan, "past"},
	{"past", "った", "う", mGodan, mGodan, "past"},
	{"past", "んだ", "ぬ", mGodan, mGodan, "past"},
	{"past", "んだ", "ぶ", mGodan, mGodan, "past"},
	{"past", "んだ", "む", mGodan, mGodan, "past"},
	{"past", "した", "する", mSuru, mSuru, "past"},
	{"past", "きた", "くる", mKuru, mKuru, "past"},
	{"past", "た", "る", mIchidan, mIchidan, "past"},
	{"past", "かった", "い", mAdj, mAdj, "past"},

	// te-form
	{"te", "いて", "く", mGodan, mGodan, "te-form"},
	{"te", "いで", "ぐ", mGodan, mGodan, "te-form"},
	{"te", "して", "す", mGodan, mGodan, "te-form"},
	{"te", "って", "つ", mGodan, mGodan, "te-form"},
	{"te", "って", "る", mGodan, mGodan, "te-form"},
	{"te", "って", "う", mGodan, mGodan, "te-form"},
	{"te", "んで", "ぬ", mGodan, mGodan, "te-form"},
	{"te", "んで", "ぶ", mGodan, mGodan, "te-form"},
	{"te", "んで", "む", mGodan, mGodan, "te-form"},
	{"te", "して", "する", mSuru, mSuru, "te-form"},
	{"te", "きて", "くる", mKuru, mKuru, "te-form"},
	{"te", "て", "る", mIchidan, mIchidan, "te-form"},
	{"te", "くて", "い", mAdj, mAdj, "te-form"},

	// negative (ない conjugates as an i-adjective, hence the adj rulesIn)
	{"negative", "かない", "く", mAdj, mGodan, "negative"},
	{"negative", "がない", "ぐ", mAdj, mGodan, "negative"},
	{"negative", "さない", "す", mAdj, mGodan, "negative"},
	{"negative", "たない", "つ", mAdj, mGodan, "negative"},
	{"negative", "なない", "ぬ", mAdj, mGodan, "negative"},
	{"negative", "ばない", "ぶ", mAdj, mGodan, "negative"},
	{"negative", "まない", "む", mAdj, mGodan, "negative"},
	{"negative", "らない", "る", mAdj, mGodan, "negative"},
	{"negative", "わない", "う", mAdj, mGodan, "negative"},
	{"negative", "しない", "する", mAdj, mSuru, "negative"},
	{"negative", "こない", "くる", mAdj, mKuru, "negative"},
	{"negative", "ない", "る", mAdj, mIchidan, "negative"},
	{"negative", "くない", "い", mAdj, mAdj, "negative"},

	// passive (conjugates as ichidan, hence the ichidan rulesIn)
	{"passive", "かれる", "く", mIchidan, mGodan, "passive"},
	{"passive", "がれる", "ぐ", mIchidan, mGodan, "passive"},
	{"passive", "される", "す", mIchidan, mGodan, "passive"},
	{"passive", "たれる", "つ", mIchidan, mGodan, "passive"},
	{"passive", "なれる", "ぬ", mIchidan, mGodan, "passive"},
	{"passive", "ばれる", "ぶ", mIchidan, mGodan, "passive"},
	{"passive", "まれる", "む", mIchidan, mGodan, "passive"},
	{"passive", "われる", "う", mIchidan, mGodan, "passive"},
	{"passive", "される", "する", mIchidan, mSuru, "passive"},
	{"passive", "こられる", "くる", mIchidan, mKuru, "passive"},
	{"passive", "られる", "る", mIchidan, mGodan, "passive"},

	// potential / passive for ichidan (same form, ambiguity preserved)
	{"potential-passive", "られる", "る", mIchidan, mIchidan, "potential or passive"},

	// potential (conjugates as ichidan)
	{"potential", "ける", "く", mIchidan, mGodan, "potential"},
	{"potential", "げる", "ぐ", mIchidan, mGodan, "potential"},
	{"potential", "せる", "す", mIchidan, mGodan, "potential"},
	{"potential", "てる", "つ", mIchidan, mGodan, "potential"},
	{"potential", "ねる", "ぬ", mIchidan, mGodan, "potential"},
	{"potential", "べる", "ぶ", mIchidan, mGodan, "potential"},
	{"potential", "める", "む", mIchidan, mGodan, "potential"},
	{"potential", "れる", "る", mIchidan, mGodan, "potential"},
	{"potential", "える", "う", mIchidan, mGodan, "potential"},
	{"potential", "できる", "する", mIchidan, mSuru, "potential"},

	// causative (conjugates as ichidan)
	{"causative", "かせる", "く", mIchidan, mGodan, "causative"},
	{"causative", "がせる", "ぐ", mIchidan, mGodan, "causative"},
	{"causative", "させる", "す", mIchidan, mGodan, "causative"},
	{"causative", "たせる", "つ", mIchidan, mGodan, "causative"},
	{"causative", "なせる", "ぬ", mIchidan, mGodan, "causative"},
	{"causative", "ばせる", "ぶ", mIchidan, mGodan, "causative"},
	{"causative", "ませる", "む", mIchidan, mGodan, "causative"},
	{"causative", "らせる", "る", mIchidan, mGodan, "causative"},
	{"causative", "わせる", "う", mIchidan, mGodan, "causative"},
	{"causative", "させる", "する", mIchidan, mSuru, "causative"},
	{"causative", "こさせる", "くる", mIchidan, mKuru, "causative"},
	{"causative", "させる", "る", mIchidan, mIchidan, "causative"},

	// -tai (conjugates as an i-adjective)
	{"tai", "きたい", "く", mAdj, mGodan, "-tai"},
	{"tai", "ぎたい", "ぐ", mAdj, mGodan, "-tai"},
	{"tai", "したい", "す", mAdj, mGodan, "-tai"},
	{"tai", "ちたい", "つ", mAdj, mGodan, "-tai"},
	{"tai", "にたい", "ぬ", mAdj, mGodan, "-tai"},
	{"tai", "びたい", "ぶ", mAdj, mGodan, "-tai"},
	{"tai", "みたい", "む", mAdj, mGodan, "-tai"},
	{"tai", "りたい", "る", mAdj, mGodan, "-tai"},
	{"tai", "いたい", "う", mAdj, mGodan, "-tai"},
	{"tai", "したい", "する", mAdj, mSuru, "-tai"},
	{"tai", "きたい", "くる", mAdj, mKuru, "-tai"},
	{"tai", "たい", "る", mAdj, mIchidan, "-tai"},

	// conditional -ba
	{"ba", "けば", "く", mGodan, mGodan, "conditional"},
	{"ba", "げば", "ぐ", mGodan, mGodan, "conditional"},
	{"ba", "せば", "す", mGodan, mGodan, "conditional"},
	{"ba", "てば", "つ", mGodan, mGodan, "conditional"},
	{"ba", "ねば", "ぬ", mGodan, mGodan, "conditional"},
	{"ba", "べば", "ぶ", mGodan, mGodan, "conditional"},
	{"ba", "めば", "む", mGodan, mGodan, "conditional"},
	{"ba", "れば", "る", mGodan | mIchidan, mGodan | mIchidan, "conditional"},
	{"ba", "えば", "う", mGodan, mGodan, "conditional"},
	{"ba", "すれば", "する", mSuru, mSuru, "conditional"},
	{"ba", "くれば", "くる", mKuru, mKuru, "conditional"},
	{"ba", "ければ", "い", mAdj, mAdj, "conditional"},

	// volitional
	{"volitional", "こう", "く", mGodan, mGodan, "volitional"},
	{"volitional", "ごう", "ぐ", mGodan, mGodan, "volitional"},
	{"volitional", "そう", "す", mGodan, mGodan, "volitional"},
	{"volitional", "とう", "つ", mGodan, mGodan, "volitional"},
	{"volitional", "のう", "ぬ", mGodan, mGodan, "volitional"},
	{"volitional", "ぼう", "ぶ", mGodan, mGodan, "volitional"},
	{"volitional", "もう", "む", mGodan, mGodan, "volitional"},
	{"volitional", "ろう", "る", mGodan, mGodan, "volitional"},
	{"volitional", "おう", "う", mGodan, mGodan, "volitional"},
	{"volitional", "しよう", "する", mSuru, mSuru, "volitional"},
	{"volitional", "こよう", "くる", mKuru, mKuru, "volitional"},
	{"volitional", "よう", "る", mIchidan, mIchidan, "volitional"},

	// adverbial (i-adjective)
	{"adverbial", "く", "い", mAdj, mAdj, "adverbial"},

	// continuative stem, per godan row
	{"continuative", "き", "く", mGodan, mGodan, "continuative"},
	{"continuative", "ぎ", "ぐ", mGodan, mGodan, "continuative"},
	{"continuative", "し", "す", mGodan, mGodan, "continuative"},
	{"continuative", "ち", "つ", mGodan, mGodan, "continuative"},
	{"continuative", "に", "ぬ", mGodan, mGodan, "continuative"},
	{"continuative", "び", "ぶ", mGodan, mGodan, "continuative"},
	{"continuative", "み", "む", mGodan, mGodan, "continuative"},
	{"continuative", "り", "る", mGodan, mGodan, "continuative"},
	{"continuative", "い", "う", mGodan, mGodan, "continuative"},
	// bare ichidan stem (長め→長める style); only tried on the raw input,
	// see the depth guard in the engine
	{"continuative", "", "る", mIchidan, mIchidan, "continuative"},
}
