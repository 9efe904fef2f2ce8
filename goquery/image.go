package goquery

import (
	"strconv"
	"strings"

	"github.com/fwojciec/html2ans"
)

// ImageParser converts <img> elements into image elements.
// Images without a source are dropped.
type ImageParser struct {
	Tags []string
}

// NewImageParser creates a new ImageParser.
func NewImageParser() *ImageParser {
	return &ImageParser{Tags: []string{"img"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *ImageParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into an image element.
func (p *ImageParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	img := imageElement(el)
	if img == nil {
		return html2ans.Match(), nil
	}
	return html2ans.Match(img), nil
}

// FigureParser converts <figure> elements holding an image into a single
// image element captioned by the <figcaption>. Figures without an image are
// declined so a later parser can handle them.
type FigureParser struct {
	Tags []string
}

// NewFigureParser creates a new FigureParser.
func NewFigureParser() *FigureParser {
	return &FigureParser{Tags: []string{"figure"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *FigureParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into an image element.
func (p *FigureParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	imgs := el.FindAll("img")
	if len(imgs) == 0 {
		return html2ans.NoMatch(), nil
	}
	img := imageElement(imgs[0])
	if img == nil {
		return html2ans.Match(), nil
	}
	if captions := el.FindAll("figcaption"); len(captions) > 0 {
		if caption := strings.TrimSpace(captions[0].Text()); caption != "" {
			img["caption"] = caption
		}
	}
	return html2ans.Match(img), nil
}

// LinkedImageParser converts an <a> wrapping only an image into an image
// element, recording the link target. Links with text are declined.
type LinkedImageParser struct {
	Tags []string
}

// NewLinkedImageParser creates a new LinkedImageParser.
func NewLinkedImageParser() *LinkedImageParser {
	return &LinkedImageParser{Tags: []string{"a"}}
}

// ApplicableElements returns the tags the parser is registered under.
func (p *LinkedImageParser) ApplicableElements() []string {
	return p.Tags
}

// Parse converts el into an image element.
func (p *LinkedImageParser) Parse(el html2ans.Element) (html2ans.ParseResult, error) {
	if !isBlank(el.Text()) {
		return html2ans.NoMatch(), nil
	}
	imgs := el.FindAll("img")
	if len(imgs) == 0 {
		return html2ans.NoMatch(), nil
	}
	img := imageElement(imgs[0])
	if img == nil {
		return html2ans.Match(), nil
	}
	if href, ok := el.Attr("href"); ok && href != "" {
		img["additional_properties"] = map[string]any{"link": href}
	}
	return html2ans.Match(img), nil
}

// imageElement builds an image element from an <img>, preferring src over
// the lazy-loading data-src. Returns nil when there is no source.
func imageElement(el html2ans.Element) html2ans.ContentElement {
	src := attr(el, "src")
	if src == "" {
		src = attr(el, "data-src")
	}
	if src == "" {
		return nil
	}

	img := html2ans.ContentElement{
		"type": "image",
		"url":  src,
	}
	if alt := attr(el, "alt"); alt != "" {
		img["alt_text"] = alt
	}
	for _, dim := range []string{"width", "height"} {
		if n, err := strconv.Atoi(attr(el, dim)); err == nil && n > 0 {
			img[dim] = n
		}
	}
	return img
}

func attr(el html2ans.Element, name string) string {
	v, _ := el.Attr(name)
	return strings.TrimSpace(v)
}
