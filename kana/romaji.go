package kana

import "strings"

// romajiTable maps Hepburn-style romaji clusters to hiragana. Longest
// clusters are tried first during conversion, so compound entries (kya, shi,
// tsu) must appear here alongside the plain rows.
var romajiTable = map[string]string{
	// basic vowels
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	// k/g
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	// s/z
	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	// t/d
	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	// n
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	// h/b/p
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	// m
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	// y
	"ya": "や", "yu": "ゆ", "yo": "よ",
	// r
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	// w and syllabic n
	"wa": "わ", "wo": "を", "n": "ん",
	// small vowels via x/l prefix
	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"xtsu": "っ", "xya": "ゃ", "xyu": "ゅ", "xyo": "ょ",
	// long vowel mark
	"-": "ー",
}

// HasRomaji reports whether s contains Latin letters, i.e. needs a romaji
// conversion pass before morphological analysis.
func HasRomaji(s string) bool { return ContainsLatin(s) }

// isRomajiConsonant reports whether b starts a doubled-consonant (sokuon)
// cluster. "n" is excluded: "nn" is the syllabic ん, not a sokuon.
func isRomajiConsonant(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o', 'n':
		return false
	}
	return b >= 'a' && b <= 'z'
}

// RomajiToHiragana converts Hepburn-style romaji in s to hiragana by greedy
// longest-cluster matching. The scan is lossless for non-romaji characters:
// anything that cannot be matched is copied through unchanged, so a partial
// conversion still fails the downstream Latin-letter rejection instead of
// silently dropping input.
func RomajiToHiragana(s string) string {
	in := strings.ToLower(s)
	var out strings.Builder
	for i := 0; i < len(in); {
		// "n" before a non-y consonant (including another "n") is the
		// syllabic ん; this must win over the table so "konnichiwa" keeps
		// its に row intact
		if in[i] == 'n' && i+1 < len(in) && in[i+1] != 'y' &&
			(isRomajiConsonant(in[i+1]) || in[i+1] == 'n') {
			out.WriteString("ん")
			i++
			continue
		}
		// doubled consonant → っ
		if i+1 < len(in) && in[i] == in[i+1] && isRomajiConsonant(in[i]) {
			out.WriteString("っ")
			i++
			continue
		}
		matched := false
		for l := 4; l >= 1; l-- {
			if i+l > len(in) {
				continue
			}
			if h, ok := romajiTable[in[i:i+l]]; ok {
				out.WriteString(h)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(in[i])
			i++
		}
	}
	return out.String()
}
