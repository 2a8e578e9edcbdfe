package content

import (
	"strings"

	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used for read time estimates.
const WordsPerMinute = 200

// PlainText returns the visible text of an HTML fragment with whitespace collapsed.
// Script and style contents are skipped.
func PlainText(fragment string) string {
	tokenizer := html.NewTokenizerFragment(strings.NewReader(fragment), "body")

	var b strings.Builder
	var skip int

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // io.EOF or malformed input, both end the text
		}

		switch tt {
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isRawTag(string(name)) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isRawTag(string(name)) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func isRawTag(name string) bool {
	return name == "script" || name == "style"
}

// WordCount counts the words of the visible text of an HTML fragment.
func WordCount(fragment string) int {
	return len(strings.Fields(PlainText(fragment)))
}

// ReadTime estimates the reading time in whole minutes, at least one.
func ReadTime(fragment string) int {
	words := WordCount(fragment)
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Excerpt returns at most maxRunes runes of the visible text, cut at a word boundary
// and followed by an ellipsis when the text was shortened.
func Excerpt(fragment string, maxRunes int) string {
	text := PlainText(fragment)
	if maxRunes <= 0 {
		return ""
	}

	runes := 0
	for i := range text {
		if runes == maxRunes {
			cut := text[:i]
			if sp := strings.LastIndexByte(cut, ' '); sp > 0 {
				cut = cut[:sp]
			}
			return strings.TrimSpace(cut) + "…"
		}
		runes++
	}
	return text
}
