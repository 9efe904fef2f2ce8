// Package readability isolates the main article content of a page with
// go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/html2ans"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements html2ans.Extractor at compile time.
var _ html2ans.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*html2ans.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, html2ans.Errorf(html2ans.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, html2ans.Errorf(html2ans.EINVALID, "extract main content: %v", err)
	}

	return &html2ans.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
