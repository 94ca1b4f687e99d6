// Package extract turns fetched markup into plain text and search result fragments.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Fragment is one title/url/snippet triple scraped from a result page
type Fragment struct {
	Title   string
	URL     string
	Snippet string
}

// FragmentExtractor pulls result fragments out of a search result page.
// Implementations are best effort: a page whose structure is not recognized
// yields no fragments rather than an error.
type FragmentExtractor interface {
	Extract(html string, limit int) ([]Fragment, error)
}

// Selectors matching Baidu's result page structure. Result headings are any h3
// whose class attribute contains "t" (t, c-title, ...), so a reshuffled class
// list keeps matching.
const (
	BaiduTitleSelector   = `h3[class*="t"]`
	BaiduSnippetSelector = `span[class*="content-right_8Zs40"]`
)

// SelectorExtractor pairs headings and snippets found by two CSS selectors by
// their position in the document.
type SelectorExtractor struct {
	TitleSelector   string // heading carrying the result link
	SnippetSelector string
}

// NewBaiduExtractor returns an extractor for Baidu result pages
func NewBaiduExtractor() *SelectorExtractor {
	return &SelectorExtractor{
		TitleSelector:   BaiduTitleSelector,
		SnippetSelector: BaiduSnippetSelector,
	}
}

// Extract returns up to limit fragments in document order. The snippet list may be
// shorter than the heading list; headings without a counterpart get an empty snippet.
// Entries with an empty title or url are dropped after the limit is applied.
func (e *SelectorExtractor) Extract(html string, limit int) ([]Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse result page: %w", err)
	}

	type link struct{ title, href string }
	var links []link
	doc.Find(e.TitleSelector).EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if limit > 0 && len(links) >= limit {
			return false
		}
		a := h.ChildrenFiltered("a[href]").First()
		if a.Length() == 0 {
			return true
		}
		href, _ := a.Attr("href")
		links = append(links, link{title: a.Text(), href: href})
		return true
	})

	var snippets []string
	doc.Find(e.SnippetSelector).Each(func(_ int, s *goquery.Selection) {
		snippets = append(snippets, s.Text())
	})

	fragments := make([]Fragment, 0, len(links))
	for i, l := range links {
		snippet := ""
		if i < len(snippets) {
			snippet = CollapseWhitespace(snippets[i])
		}
		title := CollapseWhitespace(l.title)
		url := strings.TrimSpace(l.href)
		if title == "" || url == "" {
			continue
		}
		fragments = append(fragments, Fragment{
			Title:   title,
			URL:     url,
			Snippet: snippet,
		})
	}
	return fragments, nil
}
