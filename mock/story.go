package mock

import (
	"context"

	"github.com/fwojciec/html2ans"
)

var _ html2ans.StoryService = (*StoryService)(nil)

// StoryService is a mock implementation of html2ans.StoryService.
type StoryService struct {
	CreateStoryFn   func(ctx context.Context, story *html2ans.Story, sourceHTML string) error
	FindStoryByIDFn func(ctx context.Context, id string) (*html2ans.Story, error)
	FindStoriesFn   func(ctx context.Context, filter html2ans.StoryFilter) ([]*html2ans.Story, error)
	DeleteStoryFn   func(ctx context.Context, id string) error
}

func (s *StoryService) CreateStory(ctx context.Context, story *html2ans.Story, sourceHTML string) error {
	return s.CreateStoryFn(ctx, story, sourceHTML)
}

func (s *StoryService) FindStoryByID(ctx context.Context, id string) (*html2ans.Story, error) {
	return s.FindStoryByIDFn(ctx, id)
}

func (s *StoryService) FindStories(ctx context.Context, filter html2ans.StoryFilter) ([]*html2ans.Story, error) {
	return s.FindStoriesFn(ctx, filter)
}

func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	return s.DeleteStoryFn(ctx, id)
}
