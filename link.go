package linkaudit

import "strings"

// LinkDetector extracts outbound link targets from HTML.
type LinkDetector interface {
	// Detect returns the href of every external anchor in document order.
	// The result is never nil.
	Detect(html string) []string
}

// IsExternalHref reports whether an anchor target leaves the current page.
//
// In-page fragments ("#top") and site-relative paths ("/home") are internal.
// Everything else is treated as external, including protocol-relative URLs
// ("//cdn.example.com/x"), mailto: and javascript: targets, bare relative
// paths and the empty string.
func IsExternalHref(href string) bool {
	if strings.HasPrefix(href, "#") {
		return false
	}
	if strings.HasPrefix(href, "//") {
		return true
	}
	return !strings.HasPrefix(href, "/")
}
