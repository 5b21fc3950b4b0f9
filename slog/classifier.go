package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkaudit"
)

// Ensure LoggingClassifier implements linkaudit.Classifier.
var _ linkaudit.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next   linkaudit.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next linkaudit.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Predict delegates to the wrapped classifier and logs the verdict.
func (c *LoggingClassifier) Predict(text string) (label linkaudit.Label) {
	defer func(begin time.Time) {
		c.logger.Debug("classify",
			"textLen", len(text),
			"verdict", label.String(),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Predict(text)
}
