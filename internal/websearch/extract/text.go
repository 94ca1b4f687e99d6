package extract

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// Ellipsis is appended to truncated content
const Ellipsis = "..."

// Output formats supported by page extraction
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// PlainText removes script and style blocks including their content, strips the
// remaining tags and collapses whitespace runs to single spaces.
func PlainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return CollapseWhitespace(doc.Text()), nil
}

// Markdown converts the page to markdown, keeping headings, links and lists.
func Markdown(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert page to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}

// NormalizeFormat maps an empty format to FormatText and rejects unknown formats
func NormalizeFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want %s or %s)", format, FormatText, FormatMarkdown)
	}
}

// Render extracts the page in the requested format
func Render(html, format string) (string, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return "", err
	}
	if f == FormatMarkdown {
		return Markdown(html)
	}
	return PlainText(html)
}

// CollapseWhitespace replaces every whitespace run with one space and trims the ends
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate keeps the first limit characters of s and appends Ellipsis when s was longer.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + Ellipsis
}
