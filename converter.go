package html2ans

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment, such as the content of a text
	// element, into Markdown.
	Convert(html string) (string, error)
}
