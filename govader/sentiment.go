// Package govader implements linkaudit.SentimentAnalyzer with the VADER
// lexicon from github.com/jonreiter/govader.
package govader

import (
	"math"
	"strings"

	"github.com/fwojciec/linkaudit"
	"github.com/jonreiter/govader"
)

// Ensure SentimentAnalyzer implements linkaudit.SentimentAnalyzer at compile time.
var _ linkaudit.SentimentAnalyzer = (*SentimentAnalyzer)(nil)

// SentimentAnalyzer scores text with VADER.
//
// Polarity is the VADER compound score. Subjectivity is the share of the
// text's sentiment mass that is positive or negative rather than neutral.
type SentimentAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentAnalyzer creates a SentimentAnalyzer. Loading the lexicon is
// relatively expensive, so create one analyzer and reuse it.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the sentiment of text. Blank text scores {0, 0}.
func (a *SentimentAnalyzer) Score(text string) linkaudit.SentimentScore {
	if strings.TrimSpace(text) == "" {
		return linkaudit.SentimentScore{}
	}

	s := a.analyzer.PolarityScores(text)

	var subjectivity float64
	if total := s.Positive + s.Negative + s.Neutral; total > 0 {
		subjectivity = (s.Positive + s.Negative) / total
	}

	return linkaudit.SentimentScore{
		Polarity:     clamp(s.Compound, -1, 1),
		Subjectivity: clamp(subjectivity, 0, 1),
	}
}

// clamp bounds v to [lo, hi] and maps NaN to zero.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}
