// Package kana provides script predicates and conversions over the Unicode
// blocks used by Japanese text: kanji detection, hiragana/katakana range
// tests, katakana→hiragana folding and romaji handling.
package kana

import "strings"

// IsKanji reports whether r lies in the CJK unified ideograph ranges used
// for Japanese (U+4E00–U+9FAF, plus extension A U+3400–U+4DBF).
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FAF) || (r >= 0x3400 && r <= 0x4DBF)
}

// IsHiragana reports whether r lies in the hiragana block U+3040–U+309F.
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana reports whether r lies in the katakana block U+30A0–U+30FF.
func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// IsLatin reports whether r is a Latin letter, in either the ASCII or the
// fullwidth forms range.
func IsLatin(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
		(r >= 0xFF21 && r <= 0xFF3A) || (r >= 0xFF41 && r <= 0xFF5A)
}

// ContainsKanji reports whether s contains at least one kanji character.
func ContainsKanji(s string) bool {
	return strings.ContainsFunc(s, IsKanji)
}

// ContainsLatin reports whether s contains at least one Latin letter.
func ContainsLatin(s string) bool {
	return strings.ContainsFunc(s, IsLatin)
}

// ToHiragana converts every katakana character in the conversion range
// U+30A1–U+30F6 to the corresponding hiragana by the fixed −0x60 offset.
// All other characters pass through unchanged. Idempotent: hiragana input
// comes back as-is.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
