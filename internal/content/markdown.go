package content

import (
	"bytes"

	"gitlab.com/golang-commonmark/markdown"
)

// Raw HTML inside markdown is escaped, not passed through.
var markdownParser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

// RenderMarkdown converts CommonMark source to HTML.
func RenderMarkdown(src string) string {
	tokens := markdownParser.Parse([]byte(src))

	var out bytes.Buffer
	if err := markdownParser.RenderTokens(&out, tokens); err != nil {
		return ""
	}
	return out.String()
}
