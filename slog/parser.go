package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/html2ans"
)

// Ensure LoggingParser implements html2ans.ElementParser.
var _ html2ans.ElementParser = (*LoggingParser)(nil)

// LoggingParser wraps an ElementParser so every invocation is logged at
// debug level and every failure at warn level. Failures are logged whether
// or not the engine goes on to suppress them.
type LoggingParser struct {
	next   html2ans.ElementParser
	name   string
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next html2ans.ElementParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, name: parserName(next), logger: logger}
}

func parserName(p html2ans.ElementParser) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}

// WrapParsers wraps each parser in a LoggingParser, keeping the order.
func WrapParsers(parsers []html2ans.ElementParser, logger *slog.Logger) []html2ans.ElementParser {
	wrapped := make([]html2ans.ElementParser, len(parsers))
	for i, p := range parsers {
		wrapped[i] = NewLoggingParser(p, logger)
	}
	return wrapped
}

// Unwrap returns the wrapped parser.
func (p *LoggingParser) Unwrap() html2ans.ElementParser {
	return p.next
}

// ApplicableElements delegates to the wrapped parser.
func (p *LoggingParser) ApplicableElements() []string {
	return p.next.ApplicableElements()
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(el html2ans.Element) (result html2ans.ParseResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			p.logger.Warn("parse failed",
				"tag", el.TagName(),
				"parser", p.name,
				"err", err,
			)
			return
		}
		p.logger.Debug("parse",
			"tag", el.TagName(),
			"parser", p.name,
			"success", result.Success,
			"elements", len(result.Payload),
			"recurse", len(result.RecurseInto),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Parse(el)
}
