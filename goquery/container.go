package goquery

import "github.com/fwojciec/html2ans"

// ContainerParser claims structural wrappers and hands their children back
// to the engine, so content nested in layout markup is still converted.
// Loose text in the wrapper reaches the engine as TextRun children.
type ContainerParser struct {
	Tags []string
}

// NewContainerParser creates a new ContainerParser.
func NewContainerParser() *ContainerParser {
	return &ContainerParser{Tags: []string{"div", "section", "article", "main", "center", "figure"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *ContainerParser) ApplicableElements() []string {
	return p.Tags
}

// Parse requests conversion of el's children.
func (p *ContainerParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	return html2ans.Recurse(el.Children()), nil
}

// RawHTMLParser is the catch-all for markup with no structured equivalent
// (tables, unrecognised iframes, media players). It keeps the element's
// outer HTML verbatim.
type RawHTMLParser struct {
	Tags []string
}

// NewRawHTMLParser creates a new RawHTMLParser.
func NewRawHTMLParser() *RawHTMLParser {
	return &RawHTMLParser{Tags: []string{"iframe", "table", "audio", "video"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *RawHTMLParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a raw_html element.
func (p *RawHTMLParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	return html2ans.Match(html2ans.ContentElement{
		"type":    "raw_html",
		"content": el.OuterHTML(),
	}), nil
}
