package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkaudit"
)

// Ensure LinkDetector implements linkaudit.LinkDetector at compile time.
var _ linkaudit.LinkDetector = (*LinkDetector)(nil)

// LinkDetector lists anchors that point away from the current page.
//
// Unlike a link selector for crawling, it does not resolve, deduplicate or
// compare hosts: hrefs are returned exactly as written, in document order,
// and classified with linkaudit.IsExternalHref.
type LinkDetector struct{}

// NewLinkDetector creates a new LinkDetector.
func NewLinkDetector() *LinkDetector {
	return &LinkDetector{}
}

// Detect returns the href of every external anchor in html.
func (d *LinkDetector) Detect(html string) []string {
	links := make([]string, 0)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return links
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		if linkaudit.IsExternalHref(href) {
			links = append(links, href)
		}
	})

	return links
}
