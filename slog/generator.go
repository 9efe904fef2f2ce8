// Package slog provides log/slog decorators for html2ans services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/html2ans"
)

// Ensure LoggingGenerator implements html2ans.Generator.
var _ html2ans.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging of every conversion.
type LoggingGenerator struct {
	next   html2ans.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next html2ans.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// GenerateANS delegates to the wrapped generator and logs the conversion.
func (g *LoggingGenerator) GenerateANS(html string, startTag string) (elems []html2ans.ContentElement, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"start_tag", startTag,
			"elements", len(elems),
			"duration", time.Since(begin),
		}
		if err != nil {
			g.logger.Error("generate", append(attrs, "err", err)...)
			return
		}
		g.logger.Info("generate", attrs...)
	}(time.Now())
	return g.next.GenerateANS(html, startTag)
}

// Ensure LoggingExtractor implements html2ans.Extractor.
var _ html2ans.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   html2ans.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next html2ans.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(html string) (result *html2ans.ExtractResult, err error) {
	defer func(begin time.Time) {
		size := 0
		if result != nil {
			size = len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"content_bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
