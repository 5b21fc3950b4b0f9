package linkaudit

// PageContent holds the content extracted from a fetched HTML page.
type PageContent struct {
	// Title is the text of the page's first title element.
	// Nil when the page has no title.
	Title *string

	// Description is the content of the page's meta description.
	// Nil when the page has none.
	Description *string

	// BodyText is the text of every paragraph, space-joined in document order.
	// Empty when the page has no paragraphs.
	BodyText string

	// RawHTML is the unmodified page source, retained for signature scanning.
	RawHTML string
}

// Extractor parses raw HTML into PageContent.
type Extractor interface {
	// Extract processes raw HTML and returns its content.
	// Extraction never fails: malformed HTML degrades to absent fields
	// and an empty body, with RawHTML always retained.
	Extract(html string) *PageContent
}
