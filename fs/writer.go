// Package fs writes converted stories to a directory as files.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/html2ans"
	"gopkg.in/yaml.v3"
)

// SourceToPath converts a story source to a relative file path with the
// given extension. URL sources map their path; file sources keep their
// relative directory unless it escapes the output directory.
// Example: https://example.com/news/storm → news/storm.json
func SourceToPath(source, ext string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return urlToPath(source, ext)
	}

	path := filepath.Clean(source)
	path = strings.TrimSuffix(path, filepath.Ext(path))
	if filepath.IsAbs(path) || path == ".." || strings.HasPrefix(path, ".."+string(filepath.Separator)) {
		path = filepath.Base(path)
	}
	if path == "" || path == "." || path == string(filepath.Separator) || path == "-" {
		path = "story"
	}
	return path + ext, nil
}

func urlToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", html2ans.Errorf(html2ans.EINVALID, "invalid source URL %q", rawURL)
	}

	path := u.Path

	// Handle root or trailing slash → index
	if path == "" || path == "/" {
		return "index" + ext, nil
	}

	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index" + ext, nil
	}

	path = strings.TrimSuffix(path, filepath.Ext(path))
	return path + ext, nil
}

// frontmatter is the YAML header of a Markdown story file.
type frontmatter struct {
	Source    string `yaml:"source"`
	Title     string `yaml:"title,omitempty"`
	Converted string `yaml:"converted"`
}

// FormatStory formats a story as Markdown with YAML frontmatter.
func FormatStory(story *html2ans.Story, conv html2ans.Converter) (string, error) {
	body, err := html2ans.FormatStory(story, conv)
	if err != nil {
		return "", err
	}

	header, err := yaml.Marshal(frontmatter{
		Source:    story.Source,
		Title:     story.Title,
		Converted: story.CreatedAt.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}

// Ensure Writer implements html2ans.StoryWriter at compile time.
var _ html2ans.StoryWriter = (*Writer)(nil)

// Writer writes stories as files to a directory. Stories are written as
// JSON, or as Markdown when a converter is set.
type Writer struct {
	baseDir string
	conv    html2ans.Converter
}

// NewWriter creates a new Writer that writes to the given base directory.
// A nil conv writes JSON files.
func NewWriter(baseDir string, conv html2ans.Converter) *Writer {
	return &Writer{baseDir: baseDir, conv: conv}
}

// CreateStory writes a story to disk. The story ID is set to the file path
// relative to the base directory.
func (w *Writer) CreateStory(ctx context.Context, story *html2ans.Story, sourceHTML string) error {
	if err := story.Validate(); err != nil {
		return err
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}

	ext := ".json"
	if w.conv != nil {
		ext = ".md"
	}
	relPath, err := SourceToPath(story.Source, ext)
	if err != nil {
		return err
	}
	id := filepath.ToSlash(relPath)

	var content []byte
	if w.conv != nil {
		md, err := FormatStory(story, w.conv)
		if err != nil {
			return err
		}
		content = []byte(md)
	} else {
		out := *story
		out.ID = id
		if out.ContentElements == nil {
			out.ContentElements = []html2ans.ContentElement{}
		}
		content, err = json.MarshalIndent(&out, "", "  ")
		if err != nil {
			return html2ans.Errorf(html2ans.EINVALID, "content elements are not serializable: %v", err)
		}
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return err
	}

	story.ID = id
	return nil
}
