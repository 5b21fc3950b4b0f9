// Package audit provides single-page audit orchestration.
// It coordinates fetching, extraction and the content analyses that make
// up a linkaudit.Report.
package audit

import (
	"context"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Auditor runs the analysis pipeline for one URL.
type Auditor struct {
	Fetcher    linkaudit.Fetcher
	Extractor  linkaudit.Extractor
	Sentiment  linkaudit.SentimentAnalyzer
	Trackers   linkaudit.TrackingDetector
	Links      linkaudit.LinkDetector
	Classifier linkaudit.Classifier

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Audit fetches url and analyzes its content.
//
// A fetch failure is returned unchanged and no analysis runs. Once the page
// is fetched the audit always produces a report: extraction and the analyses
// degrade instead of failing.
func (a *Auditor) Audit(ctx context.Context, url string) (*linkaudit.Report, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	content := a.Extractor.Extract(html)

	var (
		score   linkaudit.SentimentScore
		tracked bool
		links   []string
		verdict linkaudit.Label
	)

	// The analyses share only immutable input, so they run side by side.
	var g errgroup.Group
	g.Go(func() error {
		score = a.Sentiment.Score(content.BodyText)
		return nil
	})
	g.Go(func() error {
		tracked = a.Trackers.Detect(content.RawHTML)
		return nil
	})
	g.Go(func() error {
		links = a.Links.Detect(content.RawHTML)
		return nil
	})
	g.Go(func() error {
		verdict = a.Classifier.Predict(content.BodyText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if links == nil {
		links = []string{}
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	return &linkaudit.Report{
		RunID:                  uuid.NewString(),
		URL:                    url,
		Title:                  content.Title,
		Description:            content.Description,
		AnalyzedAt:             now(),
		SentimentLabel:         score.Label(),
		Polarity:               score.Polarity,
		Subjectivity:           score.Subjectivity,
		TrackingSignatureFound: tracked,
		ExternalLinks:          links,
		ClassifierVerdict:      verdict,
		ContentHash:            ComputeHash(content.RawHTML),
	}, nil
}

func (a *Auditor) validate() error {
	switch {
	case a.Fetcher == nil:
		return linkaudit.Errorf(linkaudit.EINTERNAL, "auditor has no fetcher")
	case a.Extractor == nil:
		return linkaudit.Errorf(linkaudit.EINTERNAL, "auditor has no extractor")
	case a.Sentiment == nil:
		return linkaudit.Errorf(linkaudit.EINTERNAL, "auditor has no sentiment analyzer")
	case a.Trackers == nil:
		return linkaudit.Errorf(linkaudit.EINTERNAL, "auditor has no tracking detector")
	case a.Links == nil:
		return linkaudit.Errorf(linkaudit.EINTERNAL, "auditor has no link detector")
	case a.Classifier == nil:
		return linkaudit.Errorf(linkaudit.EINTERNAL, "auditor has no classifier")
	}
	return nil
}
