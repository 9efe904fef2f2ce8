package html2ans

import (
	"context"
	"time"
)

// Story is a converted document: the content elements generated from one
// HTML source.
type Story struct {
	ID              string           `json:"id"`
	Source          string           `json:"source"`
	Title           string           `json:"title"`
	ContentElements []ContentElement `json:"content_elements"`
	SourceHash      string           `json:"sourceHash"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Validate returns an error if the story contains invalid fields.
func (s *Story) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "story source required")
	}
	return nil
}

// StoryWriter persists converted stories.
type StoryWriter interface {
	// CreateStory stores a story, assigning its ID.
	CreateStory(ctx context.Context, story *Story, sourceHTML string) error
}

// StoryService represents a service for managing stories.
type StoryService interface {
	// CreateStory creates a new story, assigning its ID, hash and timestamp.
	// The source HTML is only used to compute SourceHash.
	CreateStory(ctx context.Context, story *Story, sourceHTML string) error

	// FindStoryByID retrieves a story by ID.
	// Returns ENOTFOUND if the story does not exist.
	FindStoryByID(ctx context.Context, id string) (*Story, error)

	// FindStories retrieves stories matching the filter, newest first.
	FindStories(ctx context.Context, filter StoryFilter) ([]*Story, error)

	// DeleteStory permanently removes a story.
	// Returns ENOTFOUND if the story does not exist.
	DeleteStory(ctx context.Context, id string) error
}

// StoryFilter represents a filter for FindStories.
type StoryFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
