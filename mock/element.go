package mock

import (
	"strings"

	"github.com/fwojciec/html2ans"
)

var _ html2ans.Element = (*Element)(nil)

// Element is an in-memory implementation of html2ans.Element for tests that
// do not want to go through an HTML parser.
type Element struct {
	Tag        string
	Attributes map[string]string
	Content    string
	Inner      string
	Kids       []*Element
}

func (e *Element) TagName() string {
	return e.Tag
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

func (e *Element) Attrs() map[string]string {
	out := make(map[string]string, len(e.Attributes))
	for k, v := range e.Attributes {
		out[k] = v
	}
	return out
}

func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attributes["class"]) {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) Text() string {
	return e.Content
}

func (e *Element) HTML() string {
	return e.Inner
}

func (e *Element) OuterHTML() string {
	return "<" + e.Tag + ">" + e.Inner + "</" + e.Tag + ">"
}

func (e *Element) Children() []html2ans.Element {
	out := make([]html2ans.Element, 0, len(e.Kids))
	for _, k := range e.Kids {
		out = append(out, k)
	}
	return out
}

// FindAll matches bare tag names only.
func (e *Element) FindAll(selector string) []html2ans.Element {
	var out []html2ans.Element
	for _, k := range e.Kids {
		if k.Tag == selector {
			out = append(out, k)
		}
		out = append(out, k.FindAll(selector)...)
	}
	return out
}
