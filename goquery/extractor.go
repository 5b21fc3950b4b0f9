// Package goquery implements HTML content extraction and link detection
// using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
)

// Ensure Extractor implements linkaudit.Extractor at compile time.
var _ linkaudit.Extractor = (*Extractor)(nil)

// Extractor pulls the title, meta description and paragraph text out of a
// page. It keeps every paragraph, including boilerplate ones, so the body
// text reflects what a visitor would read on the page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns its content. Input that cannot be parsed
// yields absent metadata and an empty body.
func (e *Extractor) Extract(html string) *linkaudit.PageContent {
	content := &linkaudit.PageContent{RawHTML: html}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return content
	}

	if title := doc.Find("title").First(); title.Length() > 0 {
		text := title.Text()
		content.Title = &text
	}

	if meta := doc.Find(`meta[name="description"]`).First(); meta.Length() > 0 {
		if desc, exists := meta.Attr("content"); exists {
			content.Description = &desc
		}
	}

	content.BodyText = paragraphText(doc)

	return content
}

// paragraphText joins the text of every <p> with single spaces.
func paragraphText(doc *goquery.Document) string {
	paragraphs := doc.Find("p")
	parts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(parts, " ")
}
