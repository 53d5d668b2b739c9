package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/nyaa"
)

// Ensure LoggingParser implements nyaa.Parser.
var _ nyaa.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging of extraction results.
type LoggingParser struct {
	next   nyaa.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next nyaa.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs how much was extracted.
func (p *LoggingParser) Parse(html string, baseURL string) (results *nyaa.Results, err error) {
	defer func(begin time.Time) {
		var entries, pages int
		var current uint32
		if results != nil {
			entries = len(results.Entries)
			if results.Pagination != nil {
				pages = len(results.Pagination.Pages)
				current = results.Pagination.Current.Number
			}
		}
		p.logger.Info("parse",
			"url", baseURL,
			"bytes", len(html),
			"entries", entries,
			"pages", pages,
			"current", current,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html, baseURL)
}
