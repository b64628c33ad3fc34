package furigana

import (
	"jpreader/model"
)

// Realign recovers correct non-overlapping [start, end) rune offsets for an
// ordered segment list over the original string, returning the corrected
// list and the number of segments that could not be located. Token offsets
// coming out of reading extraction are placeholders; since tokenizer output
// concatenated in order reconstitutes the original string, a left-to-right
// cursor walk with literal substring search is sufficient.
//
// A segment whose text cannot be found from the cursor onward keeps its
// stale offsets and does not advance the cursor. That degraded segment is
// the defined fallback for pathological inputs, never a failure of the
// whole list.
func Realign(segments []model.FuriganaSegment, original string) ([]model.FuriganaSegment, int) {
	out := make([]model.FuriganaSegment, len(segments))
	origRunes := []rune(original)
	cursor := 0
	missed := 0
	for i, seg := range segments {
		out[i] = seg
		textRunes := []rune(seg.Text)
		p := indexRunes(origRunes, textRunes, cursor)
		if p < 0 {
			missed++
			continue
		}
		out[i].StartIndex = p
		out[i].EndIndex = p + len(textRunes)
		cursor = p + len(textRunes)
	}
	return out, missed
}

// indexRunes returns the rune index of the first occurrence of needle in
// haystack at or after from, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
