package batch_test

import (
	"testing"

	"github.com/fwojciec/html2ans/batch"
	"github.com/stretchr/testify/assert"
)

func TestTruncateSource(t *testing.T) {
	t.Parallel()

	t.Run("returns source unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a.html", batch.TruncateSource("a.html", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		source := "testdata/articles/2024/very-long-story.html"
		result := batch.TruncateSource(source, 20)
		assert.Equal(t, "...y-long-story.html", result)
		assert.Len(t, result, 20)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, batch.TruncateSource("a.html", 0))
		assert.Empty(t, batch.TruncateSource("a.html", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		// When maxLen < 4, we can't fit "..." prefix, so return the start
		assert.Equal(t, "sto", batch.TruncateSource("story.html", 3))
		assert.Equal(t, "ab", batch.TruncateSource("ab", 3))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", batch.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", batch.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", batch.FormatBytes(2*1024*1024))
	})
}
