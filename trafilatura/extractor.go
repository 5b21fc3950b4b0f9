// Package trafilatura implements linkaudit.Extractor with
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/linkaudit"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements linkaudit.Extractor at compile time.
var _ linkaudit.Extractor = (*Extractor)(nil)

// Extractor takes the page title and description from trafilatura's
// metadata (meta tags, OpenGraph, JSON+LD) and the body from its main
// content text with boilerplate removed.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) *linkaudit.PageContent {
	content := &linkaudit.PageContent{RawHTML: rawHTML}
	if strings.TrimSpace(rawHTML) == "" {
		return content
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return content
	}

	content.Title = optional(result.Metadata.Title)
	content.Description = optional(result.Metadata.Description)
	content.BodyText = strings.Join(strings.Fields(result.ContentText), " ")

	return content
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
