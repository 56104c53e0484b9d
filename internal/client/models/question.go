package models

import "time"

// Question is a votable entity. Upvotes and Downvotes hold user ids; the
// server guarantees a user id appears in at most one of the two sets.
// Answers are embedded on single-question fetches.
type Question struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    User      `json:"author"`
	Tags      []string  `json:"tags"`
	Answers   []Answer  `json:"answers"`
	Upvotes   []string  `json:"upvotes"`
	Downvotes []string  `json:"downvotes"`
	Views     int       `json:"views"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Upvoters returns the ids of users who upvoted the question.
func (q *Question) Upvoters() []string { return q.Upvotes }

// Downvoters returns the ids of users who downvoted the question.
func (q *Question) Downvoters() []string { return q.Downvotes }

// Score is the displayed vote tally.
func (q *Question) Score() int { return len(q.Upvotes) - len(q.Downvotes) }
