package linkaudit

// SentimentLabel is the coarse bucket of a polarity score.
type SentimentLabel string

// Sentiment labels.
const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// SentimentScore describes the polarity and subjectivity of a text.
type SentimentScore struct {
	// Polarity ranges from -1.0 (unfavorable) to 1.0 (favorable).
	Polarity float64 `json:"polarity"`

	// Subjectivity ranges from 0.0 (factual) to 1.0 (opinionated).
	Subjectivity float64 `json:"subjectivity"`
}

// Label buckets the polarity. Exactly zero is Neutral.
func (s SentimentScore) Label() SentimentLabel {
	switch {
	case s.Polarity > 0:
		return SentimentPositive
	case s.Polarity < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentimentAnalyzer scores the sentiment of body text.
type SentimentAnalyzer interface {
	// Score returns the sentiment of text. Empty text scores {0, 0}.
	Score(text string) SentimentScore
}
