package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Café au lait à Paris", "cafe-au-lait-a-paris"},
		{"Go 1.23: what's new?", "go-1-23-what-s-new"},
		{"multiple---dashes", "multiple-dashes"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}

	t.Run("long titles are capped", func(t *testing.T) {
		s := Slugify(strings.Repeat("word ", 100))
		assert.LessOrEqual(t, len(s), MaxSlugLength)
		assert.False(t, strings.HasSuffix(s, "-"))
	})
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraphs", "<p>Hello</p><p>world</p>", "Hello world"},
		{"inline tags", "<p>Some <strong>bold</strong> text</p>", "Some bold text"},
		{"script skipped", "<p>a</p><script>alert(1)</script><p>b</p>", "a b"},
		{"style skipped", "<style>p{color:red}</style>text", "text"},
		{"entities decoded", "<p>Fish &amp; chips</p>", "Fish & chips"},
		{"line breaks", "one<br/>two", "one two"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime("<p>short</p>"))
	assert.Equal(t, 1, ReadTime("<p>"+strings.Repeat("word ", 200)+"</p>"))
	assert.Equal(t, 2, ReadTime("<p>"+strings.Repeat("word ", 201)+"</p>"))
	assert.Equal(t, 5, ReadTime("<p>"+strings.Repeat("word ", 1000)+"</p>"))
}

func TestExcerpt(t *testing.T) {
	t.Run("short text kept whole", func(t *testing.T) {
		assert.Equal(t, "Hello world", Excerpt("<p>Hello world</p>", 50))
	})

	t.Run("cut at word boundary", func(t *testing.T) {
		assert.Equal(t, "The quick brown…", Excerpt("<p>The quick brown fox jumps</p>", 18))
	})

	t.Run("multibyte safe", func(t *testing.T) {
		got := Excerpt("<p>ééééé ééééé</p>", 7)
		assert.Equal(t, "ééééé…", got)
	})

	t.Run("zero length", func(t *testing.T) {
		assert.Equal(t, "", Excerpt("<p>text</p>", 0))
	})
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("# Title\n\nSome *emphasis* here.")
	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<em>emphasis</em>")

	t.Run("raw html escaped", func(t *testing.T) {
		out := RenderMarkdown("<script>alert(1)</script>")
		assert.NotContains(t, out, "<script>")
	})
}
