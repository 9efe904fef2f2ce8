package html2ans

// Element is a read-only node of a parsed HTML tree.
type Element interface {
	// TagName returns the lowercase tag name (e.g. "p", "blockquote").
	TagName() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Attrs returns a copy of all attributes.
	Attrs() map[string]string

	// HasClass reports whether the class attribute contains name.
	HasClass(name string) bool

	// Text returns the element's text content with markup removed
	// and entities already decoded.
	Text() string

	// HTML returns the inner HTML of the element.
	HTML() string

	// OuterHTML returns the element's HTML including its own tag.
	OuterHTML() string

	// Children returns the children to convert, in document order. Builders
	// may return loose text as elements of their own; comments are skipped.
	Children() []Element

	// FindAll returns the descendants matching a CSS selector in document
	// order. A bare tag name is a valid selector.
	FindAll(selector string) []Element
}

// ContentElement is one ANS content element. The "type" key identifies its
// kind; every other key is defined by the parser that produced it.
type ContentElement map[string]any

// Type returns the element's "type" discriminator, or "" if it has none.
func (c ContentElement) Type() string {
	s, _ := c["type"].(string)
	return s
}

// TreeBuilder parses HTML text into an element tree.
type TreeBuilder interface {
	// Parse returns the document root. HTML entity decoding is the
	// builder's responsibility.
	Parse(html string) (Element, error)
}
