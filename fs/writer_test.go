package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/html2ans"
	"github.com/fwojciec/html2ans/fs"
	"github.com/fwojciec/html2ans/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSourceToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "file name",
			source: "storm.html",
			want:   "storm.json",
		},
		{
			name:   "relative directory is kept",
			source: "news/2024/storm.html",
			want:   "news/2024/storm.json",
		},
		{
			name:   "absolute path uses base name",
			source: "/var/articles/storm.html",
			want:   "storm.json",
		},
		{
			name:   "parent directory uses base name",
			source: "../articles/storm.html",
			want:   "storm.json",
		},
		{
			name:   "stdin",
			source: "stdin",
			want:   "stdin.json",
		},
		{
			name:   "dash falls back to story",
			source: "-",
			want:   "story.json",
		},
		{
			name:   "URL path",
			source: "https://example.com/news/storm",
			want:   "news/storm.json",
		},
		{
			name:   "URL path drops extension and query",
			source: "https://example.com/news/storm.html?page=2",
			want:   "news/storm.json",
		},
		{
			name:   "URL trailing slash becomes index",
			source: "https://example.com/news/",
			want:   "news/index.json",
		},
		{
			name:   "URL root becomes index",
			source: "https://example.com",
			want:   "index.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.SourceToPath(tt.source, ".json")

			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestFormatStory(t *testing.T) {
	t.Parallel()

	story := &html2ans.Story{
		Source:    "storm.html",
		Title:     "Storm",
		CreatedAt: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
		ContentElements: []html2ans.ContentElement{
			{"type": "text", "content": "Winds rose."},
		},
	}

	got, err := fs.FormatStory(story, passthrough())

	require.NoError(t, err)
	want := `---
source: storm.html
title: Storm
converted: "2025-01-08"
---

# Storm

Winds rose.`
	assert.Equal(t, want, got)
}

func TestFormatStory_QuotesFrontmatter(t *testing.T) {
	t.Parallel()

	story := &html2ans.Story{
		Source:    "storm.html",
		Title:     "Storm: a #1 \"event\"",
		CreatedAt: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
	}

	got, err := fs.FormatStory(story, passthrough())
	require.NoError(t, err)

	parts := strings.SplitN(got, "---\n", 3)
	require.Len(t, parts, 3)

	var meta map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &meta))
	assert.Equal(t, "Storm: a #1 \"event\"", meta["title"])
	assert.Equal(t, "2025-01-08", meta["converted"])
}

func TestWriter_CreateStory(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON file and sets ID to its path", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir, nil)

		story := &html2ans.Story{
			Source:          "news/storm.html",
			Title:           "Storm",
			ContentElements: []html2ans.ContentElement{{"type": "divider"}},
		}

		err := w.CreateStory(context.Background(), story, "<hr>")
		require.NoError(t, err)

		assert.Equal(t, "news/storm.json", story.ID)
		assert.False(t, story.CreatedAt.IsZero())

		content, err := os.ReadFile(filepath.Join(baseDir, "news", "storm.json"))
		require.NoError(t, err)

		var got html2ans.Story
		require.NoError(t, json.Unmarshal(content, &got))
		assert.Equal(t, "Storm", got.Title)
		require.Len(t, got.ContentElements, 1)
		assert.Equal(t, "divider", got.ContentElements[0].Type())
	})

	t.Run("writes markdown when a converter is set", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir, passthrough())

		story := &html2ans.Story{
			Source:          "storm.html",
			Title:           "Storm",
			CreatedAt:       time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			ContentElements: []html2ans.ContentElement{{"type": "divider"}},
		}

		require.NoError(t, w.CreateStory(context.Background(), story, "<hr>"))

		content, err := os.ReadFile(filepath.Join(baseDir, "storm.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), `converted: "2025-01-08"`)
		assert.Contains(t, string(content), "# Storm\n\n---")
	})

	t.Run("returns error for invalid story", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir(), nil)

		err := w.CreateStory(context.Background(), &html2ans.Story{}, "")

		require.Error(t, err)
		assert.Equal(t, html2ans.EINVALID, html2ans.ErrorCode(err))
	})
}

// passthrough returns a converter that leaves HTML unchanged.
func passthrough() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return html, nil
		},
	}
}
