// Package dispatch converts HTML element trees into ANS content elements by
// dispatching each element to the element parsers registered for its tag.
package dispatch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/html2ans"
)

// Ensure Engine implements html2ans.Generator at compile time.
var _ html2ans.Generator = (*Engine)(nil)

// maxDepth bounds RecurseInto chains so a parser that hands an element back
// to itself cannot recurse forever.
const maxDepth = 1024

// Engine walks an element tree and converts it with an ordered, tag-indexed
// registry of element parsers.
//
// For each element the parsers registered under its tag are tried in
// registration order and the first successful result wins. Elements whose
// tag has no parsers, or whose parsers all decline, are dropped.
//
// The registry is meant to be populated before the engine is used. It is
// not synchronized: GenerateANS may run concurrently, AddParser and
// InsertParser may not run concurrently with anything.
//
// The zero value suppresses parser failures and has no tree builder; its
// GenerateANS always fails with ENOTIMPLEMENTED, although Convert works on
// trees built elsewhere.
type Engine struct {
	builder html2ans.TreeBuilder
	strict  bool // propagate parser failures instead of suppressing them
	parsers map[string][]html2ans.ElementParser
	tags    []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithSuppressExceptions controls whether a failing parser is treated as a
// decline (true, the default) or aborts the whole conversion (false).
func WithSuppressExceptions(suppress bool) Option {
	return func(e *Engine) {
		e.strict = !suppress
	}
}

// NewEngine creates an Engine with an empty registry that builds trees with builder.
func NewEngine(builder html2ans.TreeBuilder, opts ...Option) *Engine {
	e := &Engine{
		builder: builder,
		parsers: make(map[string][]html2ans.ElementParser),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddParser appends p to the try-order of every tag in p.ApplicableElements().
// Registering the same parser twice makes it run twice per element.
func (e *Engine) AddParser(p html2ans.ElementParser) error {
	if p == nil {
		return html2ans.Errorf(html2ans.EINVALID, "parser required")
	}
	tags := make([]string, 0, len(p.ApplicableElements()))
	for _, tag := range p.ApplicableElements() {
		tag = normalizeTag(tag)
		if tag == "" {
			return html2ans.Errorf(html2ans.EINVALID, "%T declares an empty tag name", p)
		}
		tags = append(tags, tag)
	}
	for _, tag := range tags {
		e.register(tag)
		e.parsers[tag] = append(e.parsers[tag], p)
	}
	return nil
}

// AddParsers calls AddParser for each parser in order.
func (e *Engine) AddParsers(parsers ...html2ans.ElementParser) error {
	for _, p := range parsers {
		if err := e.AddParser(p); err != nil {
			return err
		}
	}
	return nil
}

// InsertParser inserts p at position index of tag's try-order, creating the
// list if needed. An index past the end appends; index 0 makes p the first
// parser tried for tag.
func (e *Engine) InsertParser(tag string, p html2ans.ElementParser, index int) error {
	tag = normalizeTag(tag)
	switch {
	case tag == "":
		return html2ans.Errorf(html2ans.EINVALID, "tag name required")
	case p == nil:
		return html2ans.Errorf(html2ans.EINVALID, "parser required")
	case index < 0:
		return html2ans.Errorf(html2ans.EINVALID, "invalid parser index %d", index)
	}

	e.register(tag)
	list := e.parsers[tag]
	if index > len(list) {
		index = len(list)
	}
	e.parsers[tag] = slices.Insert(list, index, p)
	return nil
}

// Parsers returns a copy of tag's try-order.
func (e *Engine) Parsers(tag string) []html2ans.ElementParser {
	return slices.Clone(e.parsers[normalizeTag(tag)])
}

// Tags returns the registered tag names in first-registration order.
func (e *Engine) Tags() []string {
	return slices.Clone(e.tags)
}

// GenerateANS parses rawHTML and converts the subtree rooted at the first
// element matching startTag (any CSS selector), or at the body when startTag
// is empty. A missing root yields an empty result.
func (e *Engine) GenerateANS(rawHTML string, startTag string) ([]html2ans.ContentElement, error) {
	if e.builder == nil {
		return nil, html2ans.Errorf(html2ans.ENOTIMPLEMENTED, "engine has no tree builder")
	}

	doc, err := e.builder.Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	root := findRoot(doc, startTag)
	if root == nil {
		return []html2ans.ContentElement{}, nil
	}
	return e.Convert(root)
}

// Convert converts the children of root. On error no partial output is returned.
func (e *Engine) Convert(root html2ans.Element) ([]html2ans.ContentElement, error) {
	if root == nil {
		return nil, html2ans.Errorf(html2ans.EINVALID, "root element required")
	}
	out := []html2ans.ContentElement{}
	if err := e.dispatch(root.Children(), &out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) dispatch(elements []html2ans.Element, out *[]html2ans.ContentElement, depth int) error {
	if depth > maxDepth {
		return html2ans.Errorf(html2ans.EINTERNAL, "maximum nesting depth %d exceeded", maxDepth)
	}

	for _, el := range elements {
		result, ok, err := e.parse(el)
		if err != nil {
			return err
		} else if !ok {
			continue
		}

		for _, elem := range result.Payload {
			if elem != nil {
				*out = append(*out, elem)
			}
		}

		if len(result.RecurseInto) > 0 {
			if err := e.dispatch(result.RecurseInto, out, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// parse returns the first successful result for el. The boolean is false
// when no parser claimed the element.
func (e *Engine) parse(el html2ans.Element) (html2ans.ParseResult, bool, error) {
	tag := normalizeTag(el.TagName())
	for _, p := range e.parsers[tag] {
		result, err := safeParse(p, el)
		if err != nil {
			if !e.strict {
				continue
			}
			return html2ans.ParseResult{}, false, fmt.Errorf("parse <%s> with %T: %w", tag, p, err)
		}
		if result.Success {
			return result, true, nil
		}
	}
	return html2ans.ParseResult{}, false, nil
}

// safeParse runs p.Parse, reporting a panic as an EINTERNAL error so it is
// subject to the same suppression policy as a returned error.
func safeParse(p html2ans.ElementParser, el html2ans.Element) (result html2ans.ParseResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = html2ans.Errorf(html2ans.EINTERNAL, "parser panic: %v", r)
		}
	}()
	return p.Parse(el)
}

func (e *Engine) register(tag string) {
	if e.parsers == nil {
		e.parsers = make(map[string][]html2ans.ElementParser)
	}
	if _, ok := e.parsers[tag]; !ok {
		e.tags = append(e.tags, tag)
		e.parsers[tag] = nil
	}
}

func findRoot(doc html2ans.Element, startTag string) html2ans.Element {
	if startTag != "" {
		if found := doc.FindAll(startTag); len(found) > 0 {
			return found[0]
		}
		return nil
	}
	if bodies := doc.FindAll("body"); len(bodies) > 0 {
		return bodies[0]
	}
	return doc
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
