package linkaudit

// DefaultTrackingSignatures returns the patterns of known tracking services,
// in evaluation order. Dots are escaped so they match literally.
func DefaultTrackingSignatures() []string {
	return []string{
		`google-analytics\.com`,
		`facebook\.com`,
		`analytics\.js`,
		`track\.js`,
		`mixpanel\.com`,
		`segment\.com`,
	}
}

// TrackingDetector reports whether raw HTML references a known tracker.
type TrackingDetector interface {
	// Detect returns true if any signature matches anywhere in html.
	Detect(html string) bool
}
