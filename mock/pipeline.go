package mock

import "github.com/fwojciec/html2ans"

var (
	_ html2ans.Extractor = (*Extractor)(nil)
	_ html2ans.Converter = (*Converter)(nil)
)

// Extractor is a mock implementation of html2ans.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*html2ans.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*html2ans.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of html2ans.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
