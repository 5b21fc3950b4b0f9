package mock

import "github.com/fwojciec/linkaudit"

var (
	_ linkaudit.TrackingDetector = (*TrackingDetector)(nil)
	_ linkaudit.LinkDetector     = (*LinkDetector)(nil)
)

// TrackingDetector is a mock implementation of linkaudit.TrackingDetector.
type TrackingDetector struct {
	DetectFn func(html string) bool
}

func (d *TrackingDetector) Detect(html string) bool {
	return d.DetectFn(html)
}

// LinkDetector is a mock implementation of linkaudit.LinkDetector.
type LinkDetector struct {
	DetectFn func(html string) []string
}

func (d *LinkDetector) Detect(html string) []string {
	return d.DetectFn(html)
}
