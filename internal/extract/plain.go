package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// paragraphSep matches one blank line (possibly with trailing spaces) or more.
var paragraphSep = regexp.MustCompile(`\n[ \t]*\n+`)

// extractPlain returns content as a single page whose blocks are the
// blank-line-separated paragraphs. Invalid UTF-8 sequences are replaced
// with the replacement character.
func extractPlain(content []byte) ([]Page, error) {
	text := string(content)
	if !utf8.Valid(content) {
		text = strings.ToValidUTF8(text, "�")
	}
	var blocks []string
	for _, para := range paragraphSep.Split(text, -1) {
		if p := strings.TrimSpace(para); p != "" {
			blocks = append(blocks, p)
		}
	}
	if blocks == nil {
		return nil, nil
	}
	return []Page{{Number: 1, Blocks: blocks}}, nil
}
