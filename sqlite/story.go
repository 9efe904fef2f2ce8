package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/html2ans"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ html2ans.StoryService = (*StoryService)(nil)

// StoryService implements html2ans.StoryService using SQLite.
type StoryService struct {
	db *DB
}

// NewStoryService creates a new StoryService.
func NewStoryService(db *DB) *StoryService {
	return &StoryService{db: db}
}

// hashSource computes the xxHash of the source HTML as a hex string.
func hashSource(source string) string {
	h := xxhash.Sum64String(source)
	b := make([]byte, 8)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateStory creates a new story.
func (s *StoryService) CreateStory(ctx context.Context, story *html2ans.Story, sourceHTML string) error {
	if err := story.Validate(); err != nil {
		return err
	}

	elements := story.ContentElements
	if elements == nil {
		elements = []html2ans.ContentElement{}
	}
	encoded, err := json.Marshal(elements)
	if err != nil {
		return html2ans.Errorf(html2ans.EINVALID, "content elements are not serializable: %v", err)
	}

	story.ID = uuid.New().String()
	story.CreatedAt = time.Now().UTC()
	story.SourceHash = hashSource(sourceHTML)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stories (id, source, title, content_elements, source_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, story.ID, story.Source, story.Title, string(encoded), story.SourceHash,
		story.CreatedAt.Format(timestampFormat))

	return err
}

// FindStoryByID retrieves a story by ID.
func (s *StoryService) FindStoryByID(ctx context.Context, id string) (*html2ans.Story, error) {
	stories, err := s.FindStories(ctx, html2ans.StoryFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(stories) == 0 {
		return nil, html2ans.Errorf(html2ans.ENOTFOUND, "story not found")
	}
	return stories[0], nil
}

// FindStories retrieves stories matching the filter, newest first.
func (s *StoryService) FindStories(ctx context.Context, filter html2ans.StoryFilter) ([]*html2ans.Story, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, title, content_elements, source_hash, created_at FROM stories WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []*html2ans.Story
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}

	return stories, rows.Err()
}

// DeleteStory permanently removes a story.
func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM stories WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return html2ans.Errorf(html2ans.ENOTFOUND, "story not found")
	}

	return nil
}

func scanStory(rows *sql.Rows) (*html2ans.Story, error) {
	var story html2ans.Story
	var elements, createdAt string

	if err := rows.Scan(&story.ID, &story.Source, &story.Title, &elements,
		&story.SourceHash, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(elements), &story.ContentElements); err != nil {
		return nil, fmt.Errorf("failed to decode content_elements: %w", err)
	}

	var err error
	story.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &story, nil
}
