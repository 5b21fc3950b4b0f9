// Package bayes implements linkaudit.Classifier as a multinomial Naive-Bayes
// model over bag-of-words term counts.
package bayes

import (
	"math"

	"github.com/fwojciec/linkaudit"
)

// DefaultSmoothing is the additive (Laplace) smoothing constant.
const DefaultSmoothing = 1.0

// numLabels is the number of classes: LabelPrivacy and LabelTracking.
const numLabels = 2

// Ensure Model implements linkaudit.Classifier at compile time.
var _ linkaudit.Classifier = (*Model)(nil)

// Model is a fitted classifier. It is immutable after Train and safe for
// concurrent use.
type Model struct {
	vocabulary     map[string]int
	logPriors      [numLabels]float64
	logLikelihoods [numLabels][]float64
}

// Option configures training.
type Option func(*options)

type options struct {
	alpha float64
}

// WithSmoothing sets the additive smoothing constant. It must be positive.
func WithSmoothing(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// Train fits a Model on examples. Every label must be represented and the
// examples must contain at least one usable word.
func Train(examples []linkaudit.TrainingExample, opts ...Option) (*Model, error) {
	o := options{alpha: DefaultSmoothing}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.alpha > 0) || math.IsInf(o.alpha, 1) {
		return nil, linkaudit.Errorf(linkaudit.EINVALID, "smoothing must be positive and finite, got %v", o.alpha)
	}
	if len(examples) == 0 {
		return nil, linkaudit.Errorf(linkaudit.EINVALID, "no training examples")
	}

	vocabulary := make(map[string]int)
	docs := make([][]string, len(examples))
	var docCounts [numLabels]int

	for i, ex := range examples {
		if err := ex.Validate(); err != nil {
			return nil, err
		}
		docCounts[ex.Label]++

		docs[i] = Tokenize(ex.Text)
		for _, tok := range docs[i] {
			if _, ok := vocabulary[tok]; !ok {
				vocabulary[tok] = len(vocabulary)
			}
		}
	}

	for label, n := range docCounts {
		if n == 0 {
			return nil, linkaudit.Errorf(linkaudit.EINVALID, "no training examples for label %s", linkaudit.Label(label))
		}
	}
	if len(vocabulary) == 0 {
		return nil, linkaudit.Errorf(linkaudit.EINVALID, "training examples contain no usable words")
	}

	var counts [numLabels][]float64
	var totals [numLabels]float64
	for label := range counts {
		counts[label] = make([]float64, len(vocabulary))
	}
	for i, ex := range examples {
		for _, tok := range docs[i] {
			counts[ex.Label][vocabulary[tok]]++
			totals[ex.Label]++
		}
	}

	m := &Model{vocabulary: vocabulary}
	v := float64(len(vocabulary))
	for label := range counts {
		m.logPriors[label] = math.Log(float64(docCounts[label]) / float64(len(examples)))

		denom := totals[label] + o.alpha*v
		m.logLikelihoods[label] = make([]float64, len(vocabulary))
		for i, c := range counts[label] {
			m.logLikelihoods[label][i] = math.Log((c + o.alpha) / denom)
		}
	}

	return m, nil
}

// VocabularySize returns the number of distinct features learned.
func (m *Model) VocabularySize() int {
	return len(m.vocabulary)
}

// LogPosteriors returns the unnormalized log posterior of each label for text,
// indexed by label, and the number of in-vocabulary tokens that contributed.
// Out-of-vocabulary tokens are ignored.
func (m *Model) LogPosteriors(text string) (scores [numLabels]float64, evidence int) {
	scores = m.logPriors
	for _, tok := range Tokenize(text) {
		idx, ok := m.vocabulary[tok]
		if !ok {
			continue
		}
		evidence++
		for label := range scores {
			scores[label] += m.logLikelihoods[label][idx]
		}
	}
	return scores, evidence
}

// Predict returns the most likely label for text. Text without any
// in-vocabulary token, and ties, yield linkaudit.DefaultLabel.
func (m *Model) Predict(text string) linkaudit.Label {
	scores, evidence := m.LogPosteriors(text)
	if evidence == 0 {
		return linkaudit.DefaultLabel
	}

	privacy, tracking := scores[linkaudit.LabelPrivacy], scores[linkaudit.LabelTracking]
	switch {
	case tracking > privacy:
		return linkaudit.LabelTracking
	case privacy > tracking:
		return linkaudit.LabelPrivacy
	default:
		return linkaudit.DefaultLabel
	}
}
