package furigana

import (
	"strings"

	"jpreader/kana"
)

// TrimOkurigana strips from the reading the trailing portion that spells
// the okurigana of a single-kanji surface form, leaving the reading of the
// kanji itself. The reading must already be in hiragana.
//
// The heuristic only fires for surfaces with exactly one kanji followed by
// trailing characters: 見る/みる → み. Multi-kanji surfaces, readings that
// do not end with the trailing characters, and readings no longer than the
// trailing characters all come back unchanged. This is deliberately not a
// per-kanji reading decomposition.
func TrimOkurigana(surface, reading string) string {
	runes := []rune(surface)
	kanjiCount := 0
	kanjiIndex := -1
	for i, r := range runes {
		if kana.IsKanji(r) {
			kanjiCount++
			kanjiIndex = i
		}
	}
	if kanjiCount != 1 || kanjiIndex == len(runes)-1 {
		return reading
	}
	okurigana := string(runes[kanjiIndex+1:])
	if !strings.HasSuffix(reading, okurigana) {
		return reading
	}
	readingRunes := []rune(reading)
	okuriLen := len(runes) - kanjiIndex - 1
	if len(readingRunes) <= okuriLen {
		return reading
	}
	return string(readingRunes[:len(readingRunes)-okuriLen])
}
