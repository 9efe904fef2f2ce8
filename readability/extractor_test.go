package readability_test

import (
	"testing"

	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storyPage wraps an article body in a typical news page layout.
func storyPage(body string) string {
	return `<!DOCTYPE html>
<html>
<head><title>City Council Approves New Budget</title></head>
<body>
<nav><a href="/">Front Page</a><a href="/politics">Politics Desk</a><a href="/sports">Sports Desk</a></nav>
<article>
` + body + `
</article>
<aside class="sidebar"><h3>Most Read</h3><p>Trending elsewhere on the site today</p></aside>
<footer><p>Gazette Media Group, all rights reserved</p></footer>
</body>
</html>`
}

const storyParagraphs = `<p>The city council approved a new budget on Tuesday after a four hour session that ran late into the evening.</p>
<p>The plan raises spending on road repairs and libraries while holding property taxes flat for a second year.</p>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  \n\t"} {
		_, err := readability.NewExtractor().Extract(input)

		require.Error(t, err)
		assert.Equal(t, html2ans.EINVALID, html2ans.ErrorCode(err))
	}
}

func TestExtractor_ExtractsHeadline(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(storyPage(storyParagraphs))

	require.NoError(t, err)
	assert.Equal(t, "City Council Approves New Budget", result.Title)
}

func TestExtractor_KeepsStoryBody(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(storyPage(storyParagraphs))

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "approved a new budget on Tuesday")
	assert.Contains(t, result.ContentHTML, "holding property taxes flat")
	assert.Contains(t, result.ContentHTML, "<p")
}

func TestExtractor_DropsPageChrome(t *testing.T) {
	t.Parallel()

	result, err := readability.NewExtractor().Extract(storyPage(storyParagraphs))

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Politics Desk")
	assert.NotContains(t, result.ContentHTML, "Trending elsewhere")
	assert.NotContains(t, result.ContentHTML, "Gazette Media Group")
}

func TestExtractor_PreservesSubheadings(t *testing.T) {
	t.Parallel()

	// go-readability may demote headings, but their text survives.
	body := storyParagraphs + `
<h2>What the budget funds</h2>
<p>Road repairs receive the largest increase, followed by branch libraries and the parks department.</p>`

	result, err := readability.NewExtractor().Extract(storyPage(body))

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "What the budget funds")
	assert.Contains(t, result.ContentHTML, "<h2")
}

func TestExtractor_PreservesLists(t *testing.T) {
	t.Parallel()

	body := storyParagraphs + `
<p>The largest line items are:</p>
<ul>
<li>Road and bridge repairs</li>
<li>Extended library hours</li>
</ul>`

	result, err := readability.NewExtractor().Extract(storyPage(body))

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<ul")
	assert.Contains(t, result.ContentHTML, "Extended library hours")
}

func TestExtractor_PreservesLinks(t *testing.T) {
	t.Parallel()

	body := storyParagraphs + `
<p>The full budget document is <a href="https://example.com/budget.pdf">available online</a> ahead of the next meeting.</p>`

	result, err := readability.NewExtractor().Extract(storyPage(body))

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, `href="https://example.com/budget.pdf"`)
}

func TestExtractor_PreservesImages(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Firefighters battled the blaze for several hours before bringing it under control late on Sunday evening.</p>
<figure>
<img src="https://example.com/fire.jpg" alt="Smoke over the hills">
<figcaption>Smoke rises over the hills.</figcaption>
</figure>
<p>No injuries were reported, according to the county fire department, which urged residents to stay alert.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<img")
	assert.Contains(t, result.ContentHTML, "fire.jpg")
}
