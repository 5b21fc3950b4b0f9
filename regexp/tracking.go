// Package regexp implements tracking-signature detection over raw HTML
// using compiled regular expressions.
package regexp

import (
	"regexp"

	"github.com/fwojciec/linkaudit"
)

// Ensure TrackingDetector implements linkaudit.TrackingDetector at compile time.
var _ linkaudit.TrackingDetector = (*TrackingDetector)(nil)

// TrackingDetector searches raw HTML for known tracker signatures.
// Patterns are unanchored and case-sensitive, and are tried in order.
type TrackingDetector struct {
	patterns []*regexp.Regexp
}

// NewTrackingDetector compiles patterns into a TrackingDetector.
// Use linkaudit.DefaultTrackingSignatures for the built-in list.
func NewTrackingDetector(patterns []string) (*TrackingDetector, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, linkaudit.Errorf(linkaudit.EINVALID, "invalid tracking signature %q: %v", p, err)
		}
		compiled = append(compiled, re)
	}
	return &TrackingDetector{patterns: compiled}, nil
}

// Detect returns true on the first pattern that matches anywhere in html.
func (d *TrackingDetector) Detect(html string) bool {
	for _, re := range d.patterns {
		if re.MatchString(html) {
			return true
		}
	}
	return false
}
