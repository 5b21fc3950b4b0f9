package mock

import "github.com/fwojciec/linkaudit"

var _ linkaudit.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of linkaudit.Classifier.
type Classifier struct {
	PredictFn func(text string) linkaudit.Label
}

func (c *Classifier) Predict(text string) linkaudit.Label {
	return c.PredictFn(text)
}
