package api

import (
	"context"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
)

// CreateAnswer posts an answer to the given question.
func (c *Client) CreateAnswer(ctx context.Context, questionID, content string) (*models.Answer, error) {
	body := map[string]string{"content": content}
	var out models.Answer
	if err := c.post(ctx, "/questions/"+questionID+"/answers", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAnswer replaces the content of an owned answer.
func (c *Client) UpdateAnswer(ctx context.Context, id, content string) (*models.Answer, error) {
	body := map[string]string{"content": content}
	var out models.Answer
	if err := c.put(ctx, "/answers/"+id, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAnswer removes an owned answer.
func (c *Client) DeleteAnswer(ctx context.Context, id string) error {
	return c.delete(ctx, "/answers/"+id)
}

// AcceptAnswer marks the answer as accepted; only the question author may do
// this, which the server enforces.
func (c *Client) AcceptAnswer(ctx context.Context, id string) (*models.Answer, error) {
	var out models.Answer
	if err := c.put(ctx, "/answers/"+id+"/accept", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpvoteAnswer records an upvote on an answer.
func (c *Client) UpvoteAnswer(ctx context.Context, id string) (*models.Answer, error) {
	var out models.Answer
	if err := c.put(ctx, "/answers/"+id+"/upvote", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownvoteAnswer records a downvote on an answer.
func (c *Client) DownvoteAnswer(ctx context.Context, id string) (*models.Answer, error) {
	var out models.Answer
	if err := c.put(ctx, "/answers/"+id+"/downvote", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
