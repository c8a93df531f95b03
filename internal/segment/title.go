package segment

import (
	"strings"
	"unicode"
)

// defaultTitleWordLimit is the word count below which a block is treated as a title.
const defaultTitleWordLimit = 10

// IsTitleCandidate reports whether a text block looks like a section title:
// either every cased character is upper-case, or the block has fewer than
// wordLimit words. Pure text heuristic; no layout metadata is consulted.
func IsTitleCandidate(text string, wordLimit int) bool {
	if wordLimit <= 0 {
		wordLimit = defaultTitleWordLimit
	}
	return isAllUpper(text) || len(strings.Fields(text)) < wordLimit
}

// isAllUpper reports whether s contains at least one cased character and no
// lower-case characters. Digits and punctuation are ignored.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
