package goquery

import (
	"strings"

	"github.com/fwojciec/html2ans"
)

// BlockquoteParser converts <blockquote> elements into quote elements.
//
// Paragraph children become the quote's content elements; without them the
// blockquote's own markup becomes a single text element. A <cite> or
// <footer> child becomes the citation. A quote that would have no content
// elements is dropped rather than emitted empty.
type BlockquoteParser struct {
	Tags []string
}

// NewBlockquoteParser creates a new BlockquoteParser.
func NewBlockquoteParser() *BlockquoteParser {
	return &BlockquoteParser{Tags: []string{"blockquote"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *BlockquoteParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a quote element.
func (p *BlockquoteParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	var (
		contents []html2ans.ContentElement
		citation html2ans.ContentElement
		hasParas bool
	)
	for _, child := range elementChildren(el) {
		switch child.TagName() {
		case "p":
			hasParas = true
			if !isBlank(child.Text()) {
				contents = append(contents, textElement(child.HTML()))
			}
		case "cite", "footer":
			if citation == nil && !isBlank(child.Text()) {
				citation = textElement(strings.TrimSpace(child.Text()))
			}
		}
	}

	if !hasParas {
		if !isBlank(textWithout(el, "cite, footer")) {
			contents = append(contents, textElement(innerHTMLWithout(el, "cite, footer")))
		}
	}

	if len(contents) == 0 {
		return html2ans.Match(), nil
	}

	subtype := "blockquote"
	if el.HasClass("pullquote") {
		subtype = "pullquote"
	}
	quote := html2ans.ContentElement{
		"type":             "quote",
		"subtype":          subtype,
		"content_elements": contents,
	}
	if citation != nil {
		quote["citation"] = citation
	}
	return html2ans.Match(quote), nil
}
