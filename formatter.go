package html2ans

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatStory renders a story as Markdown for previewing.
// HTML-bearing fields (text, header, raw_html content) go through conv.
// Elements of unknown type are skipped. Blocks are separated by blank lines.
func FormatStory(story *Story, conv Converter) (string, error) {
	var parts []string
	if story.Title != "" {
		parts = append(parts, "# "+story.Title)
	}

	for _, elem := range story.ContentElements {
		block, err := formatElement(elem, conv)
		if err != nil {
			return "", fmt.Errorf("format %s element: %w", elem.Type(), err)
		}
		if block != "" {
			parts = append(parts, block)
		}
	}

	return strings.Join(parts, "\n\n"), nil
}

func formatElement(elem ContentElement, conv Converter) (string, error) {
	switch elem.Type() {
	case "text", "raw_html":
		return convertField(elem, "content", conv)
	case "header":
		content, err := convertField(elem, "content", conv)
		if err != nil {
			return "", err
		}
		level := intField(elem, "level")
		if level < 1 || level > 6 {
			level = 2
		}
		return strings.Repeat("#", level) + " " + content, nil
	case "list":
		return formatList(elem, conv, 0)
	case "image":
		out := fmt.Sprintf("![%s](%s)", stringField(elem, "alt_text"), stringField(elem, "url"))
		if caption := stringField(elem, "caption"); caption != "" {
			out += "\n\n*" + caption + "*"
		}
		return out, nil
	case "quote":
		var lines []string
		for _, child := range elementsField(elem, "content_elements") {
			text, err := convertField(child, "content", conv)
			if err != nil {
				return "", err
			}
			for _, line := range strings.Split(text, "\n") {
				lines = append(lines, "> "+line)
			}
		}
		if citation := mapField(elem, "citation"); citation != nil {
			text, err := convertField(citation, "content", conv)
			if err != nil {
				return "", err
			}
			lines = append(lines, "> — "+text)
		}
		return strings.Join(lines, "\n"), nil
	case "reference":
		referent := mapField(elem, "referent")
		if referent == nil {
			return "", nil
		}
		return fmt.Sprintf("[%s embed](%s)", stringField(referent, "type"), stringField(referent, "id")), nil
	case "code":
		return "```" + stringField(elem, "language") + "\n" + stringField(elem, "content") + "\n```", nil
	case "divider":
		return "---", nil
	}
	return "", nil
}

func formatList(elem ContentElement, conv Converter, depth int) (string, error) {
	ordered := stringField(elem, "list_type") == "ordered"
	indent := strings.Repeat("  ", depth)

	var lines []string
	n := 0
	for _, item := range elementsField(elem, "items") {
		if item.Type() == "list" {
			nested, err := formatList(item, conv, depth+1)
			if err != nil {
				return "", err
			}
			lines = append(lines, nested)
			continue
		}
		text, err := convertField(item, "content", conv)
		if err != nil {
			return "", err
		}
		n++
		marker := "- "
		if ordered {
			marker = strconv.Itoa(n) + ". "
		}
		lines = append(lines, indent+marker+text)
	}
	return strings.Join(lines, "\n"), nil
}

func convertField(elem ContentElement, key string, conv Converter) (string, error) {
	s := stringField(elem, key)
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	md, err := conv.Convert(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// The field helpers accept both freshly generated values and values decoded
// from JSON (float64 numbers, []any lists, map[string]any objects).

func stringField(elem ContentElement, key string) string {
	s, _ := elem[key].(string)
	return s
}

func intField(elem ContentElement, key string) int {
	switch v := elem[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func mapField(elem ContentElement, key string) ContentElement {
	return asElement(elem[key])
}

func elementsField(elem ContentElement, key string) []ContentElement {
	switch v := elem[key].(type) {
	case []ContentElement:
		return v
	case []any:
		out := make([]ContentElement, 0, len(v))
		for _, item := range v {
			if e := asElement(item); e != nil {
				out = append(out, e)
			}
		}
		return out
	}
	return nil
}

func asElement(v any) ContentElement {
	switch m := v.(type) {
	case ContentElement:
		return m
	case map[string]any:
		return ContentElement(m)
	}
	return nil
}
