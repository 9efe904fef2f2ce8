// Package trafilatura isolates the main article content of a page with
// go-trafilatura before it is handed to the dispatch engine.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/html2ans"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements html2ans.Extractor at compile time.
var _ html2ans.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	// IncludeImages keeps <img> elements in the extracted content so the
	// image parsers can see them.
	IncludeImages bool

	// IncludeLinks keeps <a> elements in the extracted content.
	IncludeLinks bool
}

// NewExtractor creates a new Extractor that keeps images and links.
func NewExtractor() *Extractor {
	return &Extractor{IncludeImages: true, IncludeLinks: true}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*html2ans.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, html2ans.Errorf(html2ans.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeImages:  e.IncludeImages,
		IncludeLinks:   e.IncludeLinks,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, html2ans.Errorf(html2ans.EINVALID, "extract main content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &html2ans.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
