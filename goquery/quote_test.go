package goquery_test

import (
	"testing"

	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockquoteParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs and citation", func(t *testing.T) {
		t.Parallel()

		el := find(t, `<blockquote><p>First</p><p> </p><p>Second</p><cite>Author</cite></blockquote>`, "blockquote")

		got, err := goquery.NewBlockquoteParser().Parse(el)

		require.NoError(t, err)
		assert.Equal(t, []html2ans.ContentElement{{
			"type":    "quote",
			"subtype": "blockquote",
			"content_elements": []html2ans.ContentElement{
				{"type": "text", "content": "First"},
				{"type": "text", "content": "Second"},
			},
			"citation": html2ans.ContentElement{"type": "text", "content": "Author"},
		}}, got.Payload)
	})

	t.Run("uses own markup without paragraphs", func(t *testing.T) {
		t.Parallel()

		el := find(t, `<blockquote class="pullquote">Said <em>this</em><footer>Someone</footer></blockquote>`, "blockquote")

		got, err := goquery.NewBlockquoteParser().Parse(el)

		require.NoError(t, err)
		assert.Equal(t, []html2ans.ContentElement{{
			"type":    "quote",
			"subtype": "pullquote",
			"content_elements": []html2ans.ContentElement{
				{"type": "text", "content": "Said <em>this</em>"},
			},
			"citation": html2ans.ContentElement{"type": "text", "content": "Someone"},
		}}, got.Payload)
	})

	t.Run("finds citation next to loose text", func(t *testing.T) {
		t.Parallel()

		el := find(t, `<blockquote>Quote text <cite>Name</cite></blockquote>`, "blockquote")

		got, err := goquery.NewBlockquoteParser().Parse(el)

		require.NoError(t, err)
		assert.Equal(t, []html2ans.ContentElement{{
			"type":    "quote",
			"subtype": "blockquote",
			"content_elements": []html2ans.ContentElement{
				{"type": "text", "content": "Quote text"},
			},
			"citation": html2ans.ContentElement{"type": "text", "content": "Name"},
		}}, got.Payload)
	})

	t.Run("never emits quote without content", func(t *testing.T) {
		t.Parallel()

		for _, html := range []string{
			"<blockquote>\n\t&nbsp;</blockquote>",
			"<blockquote><p>&nbsp;</p></blockquote>",
			"<blockquote><cite>Only citation</cite></blockquote>",
			"<blockquote><em>&nbsp;</em> <footer>Someone</footer></blockquote>",
		} {
			el := find(t, html, "blockquote")

			got, err := goquery.NewBlockquoteParser().Parse(el)

			require.NoError(t, err)
			assert.True(t, got.Success, html)
			assert.Empty(t, got.Payload, html)
		}
	})
}
