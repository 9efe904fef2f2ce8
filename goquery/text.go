package goquery

import (
	"strings"

	"github.com/fwojciec/html2ans"
)

// ParagraphParser converts <p> elements into text elements.
//
// A paragraph without text but with element children (e.g. a <p> wrapping
// an <img> or <iframe>) is handed back to the engine for its children.
// A paragraph with neither is dropped.
type ParagraphParser struct {
	Tags []string
}

// NewParagraphParser creates a new ParagraphParser.
func NewParagraphParser() *ParagraphParser {
	return &ParagraphParser{Tags: []string{"p"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *ParagraphParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a text element.
func (p *ParagraphParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	if isBlank(el.Text()) {
		if children := el.Children(); len(children) > 0 {
			return html2ans.Recurse(children), nil
		}
		return html2ans.Match(), nil
	}
	return html2ans.Match(textElement(el.HTML())), nil
}

// HeaderParser converts <h1>..<h6> elements into header elements.
type HeaderParser struct {
	Tags []string
}

// NewHeaderParser creates a new HeaderParser.
func NewHeaderParser() *HeaderParser {
	return &HeaderParser{Tags: []string{"h1", "h2", "h3", "h4", "h5", "h6"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *HeaderParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a header element with its level taken from the tag name.
func (p *HeaderParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	tag := el.TagName()
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return html2ans.NoMatch(), nil
	}
	if isBlank(el.Text()) {
		return html2ans.Match(), nil
	}
	return html2ans.Match(html2ans.ContentElement{
		"type":    "header",
		"level":   int(tag[1] - '0'),
		"content": strings.TrimSpace(el.HTML()),
	}), nil
}

// ListParser converts <ul> and <ol> elements into list elements.
// Nested lists become list items of their parent list.
type ListParser struct {
	Tags []string
}

// NewListParser creates a new ListParser.
func NewListParser() *ListParser {
	return &ListParser{Tags: []string{"ul", "ol"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *ListParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a list element. Lists without items are dropped.
func (p *ListParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	list := listElement(el)
	if list == nil {
		return html2ans.Match(), nil
	}
	return html2ans.Match(list), nil
}

func listElement(el html2ans.Element) html2ans.ContentElement {
	listType := "unordered"
	if el.TagName() == "ol" {
		listType = "ordered"
	}

	var items []html2ans.ContentElement
	for _, li := range elementChildren(el) {
		if li.TagName() != "li" {
			continue
		}
		if content := strings.TrimSpace(innerHTMLWithout(li, "ul, ol")); content != "" {
			items = append(items, textElement(content))
		}
		for _, child := range elementChildren(li) {
			if tag := child.TagName(); tag == "ul" || tag == "ol" {
				if nested := listElement(child); nested != nil {
					items = append(items, nested)
				}
			}
		}
	}

	if len(items) == 0 {
		return nil
	}
	return html2ans.ContentElement{
		"type":      "list",
		"list_type": listType,
		"items":     items,
	}
}

// DividerParser converts <hr> elements into divider elements.
type DividerParser struct {
	Tags []string
}

// NewDividerParser creates a new DividerParser.
func NewDividerParser() *DividerParser {
	return &DividerParser{Tags: []string{"hr"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *DividerParser) ApplicableElements() []string {
	return p.Tags
}

// Parse returns a divider element.
func (p *DividerParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	return html2ans.Match(html2ans.ContentElement{"type": "divider"}), nil
}

// CodeParser converts <pre> blocks into code elements. The language is read
// from a "language-*" or "lang-*" class on the <pre> or its <code> child.
type CodeParser struct {
	Tags []string
}

// NewCodeParser creates a new CodeParser.
func NewCodeParser() *CodeParser {
	return &CodeParser{Tags: []string{"pre"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *CodeParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a code element.
func (p *CodeParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	content := strings.Trim(el.Text(), "\n")
	if isBlank(content) {
		return html2ans.Match(), nil
	}

	elem := html2ans.ContentElement{
		"type":    "code",
		"content": content,
	}
	lang := codeLanguage(el)
	if lang == "" {
		for _, code := range el.FindAll("code") {
			if lang = codeLanguage(code); lang != "" {
				break
			}
		}
	}
	if lang != "" {
		elem["language"] = lang
	}
	return html2ans.Match(elem), nil
}

func codeLanguage(el html2ans.Element) string {
	class, _ := el.Attr("class")
	for _, c := range strings.Fields(class) {
		for _, prefix := range []string{"language-", "lang-"} {
			if strings.HasPrefix(c, prefix) && len(c) > len(prefix) {
				return strings.TrimPrefix(c, prefix)
			}
		}
	}
	return ""
}

// InlineTextParser converts inline elements found at block level (links,
// emphasis, spans) into text elements, keeping their markup.
type InlineTextParser struct {
	Tags []string
}

// NewInlineTextParser creates a new InlineTextParser.
func NewInlineTextParser() *InlineTextParser {
	return &InlineTextParser{Tags: []string{"a", "strong", "em", "b", "i", "u", "span"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *InlineTextParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a text element. A <span> contributes only its
// inner HTML since it carries no formatting of its own.
func (p *InlineTextParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	if isBlank(el.Text()) {
		return html2ans.Match(), nil
	}
	if el.TagName() == "span" {
		return html2ans.Match(textElement(el.HTML())), nil
	}
	return html2ans.Match(textElement(el.OuterHTML())), nil
}

// TextRunParser converts loose text found directly inside a block element,
// together with its inline markup, into a text element.
type TextRunParser struct {
	Tags []string
}

// NewTextRunParser creates a new TextRunParser.
func NewTextRunParser() *TextRunParser {
	return &TextRunParser{Tags: []string{TextRunTag}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *TextRunParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into a text element.
func (p *TextRunParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	if isBlank(el.Text()) {
		return html2ans.Match(), nil
	}
	return html2ans.Match(textElement(el.HTML())), nil
}

func textElement(content string) html2ans.ContentElement {
	return html2ans.ContentElement{
		"type":    "text",
		"content": strings.TrimSpace(content),
	}
}

// isBlank reports whether s holds nothing but whitespace. Decoded &nbsp;
// (U+00A0) counts as whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
