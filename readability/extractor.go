// Package readability implements linkaudit.Extractor with Mozilla's
// Readability algorithm via github.com/go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/linkaudit"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements linkaudit.Extractor at compile time.
var _ linkaudit.Extractor = (*Extractor)(nil)

// Extractor reduces a page to its main article before taking its text, so
// navigation and footer paragraphs do not contribute to the body.
// Readability reports a missing title or excerpt as an empty string, so
// empty values are treated as absent.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) *linkaudit.PageContent {
	content := &linkaudit.PageContent{RawHTML: rawHTML}
	if strings.TrimSpace(rawHTML) == "" {
		return content
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return content
	}

	content.Title = optional(article.Title)
	content.Description = optional(article.Excerpt)
	content.BodyText = strings.Join(strings.Fields(article.TextContent), " ")

	return content
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
