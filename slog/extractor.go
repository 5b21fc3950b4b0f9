package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkaudit"
)

// Ensure LoggingExtractor implements linkaudit.Extractor.
var _ linkaudit.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   linkaudit.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkaudit.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string) (content *linkaudit.PageContent) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"title", content != nil && content.Title != nil,
			"description", content != nil && content.Description != nil,
			"bodyLen", bodyLen(content),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}

func bodyLen(content *linkaudit.PageContent) int {
	if content == nil {
		return 0
	}
	return len(content.BodyText)
}
