package mock

import (
	"context"

	"github.com/fwojciec/html2ans"
)

var _ html2ans.StoryWriter = (*StoryWriter)(nil)

// StoryWriter is a mock implementation of html2ans.StoryWriter.
type StoryWriter struct {
	CreateStoryFn func(ctx context.Context, story *html2ans.Story, sourceHTML string) error
}

func (w *StoryWriter) CreateStory(ctx context.Context, story *html2ans.Story, sourceHTML string) error {
	return w.CreateStoryFn(ctx, story, sourceHTML)
}
