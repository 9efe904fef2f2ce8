// Package goquery implements the HTML tree and the default element parsers
// on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/html2ans"
	"golang.org/x/net/html"
)

// Ensure Builder implements html2ans.TreeBuilder at compile time.
var _ html2ans.TreeBuilder = (*Builder)(nil)

// Builder parses HTML into a goquery-backed element tree.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Parse parses html with the HTML5 algorithm and returns the document root.
// Missing html, head and body elements are synthesized by the parser, so the
// returned root always contains a body.
func (b *Builder) Parse(rawHTML string) (html2ans.Element, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, html2ans.Errorf(html2ans.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewElement(doc.Selection), nil
}

// Ensure Element implements html2ans.Element at compile time.
var _ html2ans.Element = (*Element)(nil)

// Element adapts a single-node goquery selection to html2ans.Element.
type Element struct {
	sel *goquery.Selection
}

// NewElement wraps the first node of sel.
func NewElement(sel *goquery.Selection) *Element {
	return &Element{sel: sel.First()}
}

// Selection returns the underlying goquery selection.
func (e *Element) Selection() *goquery.Selection {
	return e.sel
}

// TagName returns the node name, "#document" for the document root.
func (e *Element) TagName() string {
	return goquery.NodeName(e.sel)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Attrs returns a copy of all attributes.
func (e *Element) Attrs() map[string]string {
	attrs := make(map[string]string)
	if len(e.sel.Nodes) == 0 {
		return attrs
	}
	for _, a := range e.sel.Nodes[0].Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	return e.sel.HasClass(name)
}

// Text returns the combined, entity-decoded text of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// HTML returns the inner HTML, or "" if it cannot be rendered.
func (e *Element) HTML() string {
	s, err := e.sel.Html()
	if err != nil {
		return ""
	}
	return s
}

// OuterHTML returns the element's HTML including its own tag.
func (e *Element) OuterHTML() string {
	s, err := goquery.OuterHtml(e.sel)
	if err != nil {
		return ""
	}
	return s
}

// Children returns the element children in document order. Loose text is
// not dropped: each run of non-blank text and the inline elements around it
// is returned as a single element named TextRunTag. Inline elements with no
// loose text next to them are returned as themselves.
func (e *Element) Children() []html2ans.Element {
	contents := e.sel.Contents()
	var out []html2ans.Element
	start, hasText := -1, false

	flush := func(end int) {
		if start < 0 {
			return
		}
		run := contents.Slice(start, end)
		if hasText {
			out = append(out, &TextRun{sel: run})
		} else {
			out = append(out, wrapAll(run)...)
		}
		start, hasText = -1, false
	}

	for i, n := range contents.Nodes {
		switch {
		case n.Type == html.TextNode, n.Type == html.ElementNode && inlineTags[n.Data]:
			if start < 0 {
				start = i
			}
			if n.Type == html.TextNode && !isBlank(n.Data) {
				hasText = true
			}
		case n.Type == html.ElementNode:
			flush(i)
			out = append(out, &Element{sel: contents.Eq(i)})
		}
	}
	flush(len(contents.Nodes))
	return out
}

// FindAll returns the descendants matching selector in document order.
// An invalid selector matches nothing.
func (e *Element) FindAll(selector string) []html2ans.Element {
	return wrapAll(e.sel.Find(selector))
}

// TextRunTag is the tag name of a TextRun.
const TextRunTag = "#text"

// inlineTags are the phrasing elements that stay with the loose text around
// them. Images are left out so they still become image elements.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "br": true,
	"cite": true, "code": true, "data": true, "del": true, "dfn": true, "em": true,
	"i": true, "ins": true, "kbd": true, "mark": true, "q": true, "s": true,
	"samp": true, "small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "time": true, "u": true, "var": true, "wbr": true,
}

// Ensure TextRun implements html2ans.Element at compile time.
var _ html2ans.Element = (*TextRun)(nil)

// TextRun is a run of sibling text and inline nodes that sits directly
// inside a block element, such as the sentence in
// <div>Intro <a href="/x">link</a> tail.</div>. It has no attributes.
type TextRun struct {
	sel *goquery.Selection
}

// TagName returns TextRunTag.
func (r *TextRun) TagName() string {
	return TextRunTag
}

// Attr always reports a missing attribute.
func (r *TextRun) Attr(name string) (string, bool) {
	return "", false
}

// Attrs returns an empty map.
func (r *TextRun) Attrs() map[string]string {
	return map[string]string{}
}

// HasClass always returns false.
func (r *TextRun) HasClass(name string) bool {
	return false
}

// Text returns the decoded text of the run.
func (r *TextRun) Text() string {
	return r.sel.Text()
}

// HTML renders the nodes of the run.
func (r *TextRun) HTML() string {
	var b strings.Builder
	for _, n := range r.sel.Nodes {
		if err := html.Render(&b, n); err != nil {
			return ""
		}
	}
	return b.String()
}

// OuterHTML is the same as HTML since a run has no tag of its own.
func (r *TextRun) OuterHTML() string {
	return r.HTML()
}

// Children returns the inline elements of the run.
func (r *TextRun) Children() []html2ans.Element {
	return wrapAll(r.sel)
}

// FindAll returns the inline elements of the run and their descendants
// matching selector, in document order.
func (r *TextRun) FindAll(selector string) []html2ans.Element {
	var out []html2ans.Element
	r.sel.Each(func(_ int, s *goquery.Selection) {
		if s.Nodes[0].Type != html.ElementNode {
			return
		}
		if s.Is(selector) {
			out = append(out, &Element{sel: s})
		}
		out = append(out, wrapAll(s.Find(selector))...)
	})
	return out
}

// elementChildren returns the element children of el without grouping
// loose text into runs.
func elementChildren(el html2ans.Element) []html2ans.Element {
	ge, ok := el.(*Element)
	if !ok {
		return el.Children()
	}
	return wrapAll(ge.sel.Children())
}

// withoutChildren returns a detached copy of el with the children matching
// selector removed, or nil when el is not backed by goquery.
func withoutChildren(el html2ans.Element, selector string) *goquery.Selection {
	ge, ok := el.(*Element)
	if !ok {
		return nil
	}
	clone := ge.sel.Clone()
	clone.Children().Filter(selector).Remove()
	return clone
}

// innerHTMLWithout renders the inner HTML of el with the children matching
// selector removed. The tree itself is left untouched.
func innerHTMLWithout(el html2ans.Element, selector string) string {
	clone := withoutChildren(el, selector)
	if clone == nil {
		return el.HTML()
	}
	s, err := clone.Html()
	if err != nil {
		return ""
	}
	return s
}

// textWithout returns the text of el with the children matching selector
// removed.
func textWithout(el html2ans.Element, selector string) string {
	clone := withoutChildren(el, selector)
	if clone == nil {
		return el.Text()
	}
	return clone.Text()
}

func wrapAll(sel *goquery.Selection) []html2ans.Element {
	out := make([]html2ans.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		if s.Nodes[0].Type == html.ElementNode {
			out = append(out, &Element{sel: s})
		}
	})
	return out
}
