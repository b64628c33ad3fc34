package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHiragana_OffsetLaw(t *testing.T) {
	// every katakana in the conversion range maps down by exactly 0x60
	for r := rune(0x30A1); r <= 0x30F6; r++ {
		got := []rune(ToHiragana(string(r)))
		if assert.Len(t, got, 1) {
			assert.Equal(t, r-0x60, got[0], "U+%04X", r)
		}
	}
}

func TestToHiragana_Idempotent(t *testing.T) {
	in := "たべる"
	assert.Equal(t, in, ToHiragana(in))
	once := ToHiragana("タベル")
	assert.Equal(t, "たべる", once)
	assert.Equal(t, once, ToHiragana(once))
}

func TestToHiragana_MixedPassThrough(t *testing.T) {
	assert.Equal(t, "漢字とかな abc", ToHiragana("漢字とカナ abc"))
	// ー and ヶ sit outside the conversion range and pass through
	assert.Equal(t, "こーひー", ToHiragana("コーヒー"))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		r                              rune
		kanji, hiragana, katakana, lat bool
	}{
		{'食', true, false, false, false},
		{'㐂', true, false, false, false}, // extension A
		{'た', false, true, false, false},
		{'タ', false, false, true, false},
		{'a', false, false, false, true},
		{'Ｚ', false, false, false, true},
		{'。', false, false, false, false},
		{'1', false, false, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kanji, IsKanji(tt.r), "IsKanji %c", tt.r)
		assert.Equal(t, tt.hiragana, IsHiragana(tt.r), "IsHiragana %c", tt.r)
		assert.Equal(t, tt.katakana, IsKatakana(tt.r), "IsKatakana %c", tt.r)
		assert.Equal(t, tt.lat, IsLatin(tt.r), "IsLatin %c", tt.r)
	}
	assert.True(t, ContainsKanji("たべ物"))
	assert.False(t, ContainsKanji("たべもの"))
	assert.True(t, ContainsLatin("たべcat"))
	assert.False(t, ContainsLatin("たべもの"))
}

func TestRomajiToHiragana(t *testing.T) {
	tests := []struct{ in, want string }{
		{"taberu", "たべる"},
		{"tabeteimasu", "たべています"},
		{"shinbun", "しんぶん"},
		{"gakkou", "がっこう"},
		{"kyou", "きょう"},
		{"chotto", "ちょっと"},
		{"n", "ん"},
		{"konnichiwa", "こんにちわ"},
		{"ramen", "らめん"},
		{"TABERU", "たべる"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RomajiToHiragana(tt.in), "input %q", tt.in)
	}
}

func TestRomajiToHiragana_KeepsUnmatched(t *testing.T) {
	// unmatched Latin survives so downstream rejection still fires
	out := RomajiToHiragana("xqv")
	assert.Contains(t, out, "q")
}

func TestHasRomaji(t *testing.T) {
	assert.True(t, HasRomaji("taberu"))
	assert.True(t, HasRomaji("たべru"))
	assert.False(t, HasRomaji("たべる"))
}
