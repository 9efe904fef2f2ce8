package html2ans

// ParseResult is the outcome of one parser invocation on one element.
//
// When Success is false the engine ignores Payload and RecurseInto. A
// successful result with an empty Payload claims the element but contributes
// nothing, which is how structurally empty matches are dropped.
type ParseResult struct {
	Payload []ContentElement
	Success bool

	// RecurseInto lists elements the engine dispatches after Payload, in
	// order, exactly as it would dispatch an element's children.
	RecurseInto []Element
}

// Match returns a successful result contributing elems.
func Match(elems ...ContentElement) ParseResult {
	return ParseResult{Payload: elems, Success: true}
}

// Recurse returns a successful result contributing elems followed by
// the conversion of children.
func Recurse(children []Element, elems ...ContentElement) ParseResult {
	return ParseResult{Payload: elems, Success: true, RecurseInto: children}
}

// NoMatch returns a result declining the element.
func NoMatch() ParseResult {
	return ParseResult{}
}

// ElementParser converts one kind of HTML element into content elements.
type ElementParser interface {
	// ApplicableElements returns the tag names the parser is registered under.
	ApplicableElements() []string

	// Parse converts el. Declining is expressed with a result whose Success
	// is false; an error signals the parser could not handle el despite the
	// tag match and is fatal or suppressed depending on engine configuration.
	Parse(el Element) (ParseResult, error)
}

// Generator converts HTML text into content elements.
type Generator interface {
	// GenerateANS converts the subtree rooted at the first element matching
	// startTag, or the document body when startTag is empty. A missing root
	// yields an empty result and no error.
	GenerateANS(html string, startTag string) ([]ContentElement, error)
}
