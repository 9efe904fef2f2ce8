package mock

import "github.com/fwojciec/html2ans"

var _ html2ans.ElementParser = (*ElementParser)(nil)

// ElementParser is a mock implementation of html2ans.ElementParser.
type ElementParser struct {
	Tags    []string
	ParseFn func(el html2ans.Element) (html2ans.ParseResult, error)
}

func (p *ElementParser) ApplicableElements() []string {
	return p.Tags
}

func (p *ElementParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	return p.ParseFn(el)
}

var _ html2ans.Generator = (*Generator)(nil)

// Generator is a mock implementation of html2ans.Generator.
type Generator struct {
	GenerateANSFn func(html string, startTag string) ([]html2ans.ContentElement, error)
}

func (g *Generator) GenerateANS(html string, startTag string) ([]html2ans.ContentElement, error) {
	return g.GenerateANSFn(html, startTag)
}

var _ html2ans.TreeBuilder = (*TreeBuilder)(nil)

// TreeBuilder is a mock implementation of html2ans.TreeBuilder.
type TreeBuilder struct {
	ParseFn func(html string) (html2ans.Element, error)
}

func (b *TreeBuilder) Parse(html string) (html2ans.Element, error) {
	return b.ParseFn(html)
}
