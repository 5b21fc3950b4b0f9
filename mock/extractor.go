package mock

import "github.com/fwojciec/linkaudit"

var _ linkaudit.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linkaudit.Extractor.
type Extractor struct {
	ExtractFn func(html string) *linkaudit.PageContent
}

func (e *Extractor) Extract(html string) *linkaudit.PageContent {
	return e.ExtractFn(html)
}
