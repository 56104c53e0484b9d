package api

import (
	"context"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
)

// ListQuestions returns all questions, newest first (server order).
func (c *Client) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var out []models.Question
	if err := c.get(ctx, "/questions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuestion fetches a single question with its answers embedded.
func (c *Client) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	var out models.Question
	if err := c.get(ctx, "/questions/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateQuestion posts a new question.
func (c *Client) CreateQuestion(ctx context.Context, title, content string, tags []string) (*models.Question, error) {
	body := map[string]any{"title": title, "content": content, "tags": tags}
	var out models.Question
	if err := c.post(ctx, "/questions", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateQuestion replaces the title, content and tags of an owned question.
func (c *Client) UpdateQuestion(ctx context.Context, id, title, content string, tags []string) (*models.Question, error) {
	body := map[string]any{"title": title, "content": content, "tags": tags}
	var out models.Question
	if err := c.put(ctx, "/questions/"+id, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteQuestion removes an owned question.
func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.delete(ctx, "/questions/"+id)
}

// UpvoteQuestion records an upvote. The server atomically removes the voter
// from the downvote set when present.
func (c *Client) UpvoteQuestion(ctx context.Context, id string) (*models.Question, error) {
	var out models.Question
	if err := c.put(ctx, "/questions/"+id+"/upvote", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownvoteQuestion records a downvote, mirroring UpvoteQuestion.
func (c *Client) DownvoteQuestion(ctx context.Context, id string) (*models.Question, error) {
	var out models.Question
	if err := c.put(ctx, "/questions/"+id+"/downvote", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
