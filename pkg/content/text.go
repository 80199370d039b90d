package content

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// SnippetLength is the default snippet size in runes
const SnippetLength = 200

// feed markup is sanitized before text is taken from it, scripts and styles never reach the text
var sanitizer = bluemonday.UGCPolicy()

// blockTags get a trailing space so text of adjacent blocks does not run together
const blockTags = "p, div, br, li, tr, td, th, blockquote, pre, h1, h2, h3, h4, h5, h6"

// PlainText converts an HTML fragment to single-spaced plain text with entities decoded
func PlainText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitizer.Sanitize(html)))
	if err != nil {
		return CollapseSpaces(html)
	}
	doc.Find(blockTags).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	return CollapseSpaces(doc.Text())
}

// CollapseSpaces trims the text and replaces whitespace runs with a single space
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Snippet returns up to n runes from the start of the text, "..." is appended when text was cut
func Snippet(text string, n int) string {
	text = CollapseSpaces(text)
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + "..."
}
