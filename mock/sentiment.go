package mock

import "github.com/fwojciec/linkaudit"

var _ linkaudit.SentimentAnalyzer = (*SentimentAnalyzer)(nil)

// SentimentAnalyzer is a mock implementation of linkaudit.SentimentAnalyzer.
type SentimentAnalyzer struct {
	ScoreFn func(text string) linkaudit.SentimentScore
}

func (s *SentimentAnalyzer) Score(text string) linkaudit.SentimentScore {
	return s.ScoreFn(text)
}
