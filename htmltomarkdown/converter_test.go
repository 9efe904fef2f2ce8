package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts inline text fragment", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`Hello, <strong>world</strong>!`)

		require.NoError(t, err)
		assert.Equal(t, "Hello, **world**!", md)
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`Visit <a href="https://example.com">Example</a> for more info.`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("converts emphasis", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<em>italic</em> text`)

		require.NoError(t, err)
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts inline code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`Run <code>go build</code> to compile.`)

		require.NoError(t, err)
		assert.Contains(t, md, "`go build`")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<p>Padded</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Padded", md)
	})

	t.Run("converts raw html tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Name</th><th>Age</th></tr></thead>
<tbody><tr><td>Alice</td><td>30</td></tr><tr><td>Bob</td><td>25</td></tr></tbody>
</table>`

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Name")
		assert.Contains(t, md, "Alice")
		assert.Contains(t, md, "Bob")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "---")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("  ")

		require.Error(t, err)
		assert.Equal(t, html2ans.EINVALID, html2ans.ErrorCode(err))
	})
}

func TestFormatStory_WithConverter(t *testing.T) {
	t.Parallel()

	story := &html2ans.Story{
		Title: "Launch",
		ContentElements: []html2ans.ContentElement{
			{"type": "text", "content": `We <a href="https://example.com">launched</a>.`},
			{"type": "header", "content": "Details", "level": 3},
			{"type": "divider"},
		},
	}

	out, err := html2ans.FormatStory(story, htmltomarkdown.NewConverter())

	require.NoError(t, err)
	assert.Equal(t, "# Launch\n\nWe [launched](https://example.com).\n\n### Details\n\n---", out)
}
