package models

import "time"

// Answer is a votable entity attached to a question. Question holds the
// parent question id.
type Answer struct {
	ID         string    `json:"_id"`
	Content    string    `json:"content"`
	Author     User      `json:"author"`
	Question   string    `json:"question"`
	IsAccepted bool      `json:"isAccepted"`
	Upvotes    []string  `json:"upvotes"`
	Downvotes  []string  `json:"downvotes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Upvoters returns the ids of users who upvoted the answer.
func (a *Answer) Upvoters() []string { return a.Upvotes }

// Downvoters returns the ids of users who downvoted the answer.
func (a *Answer) Downvoters() []string { return a.Downvotes }

// Score is the displayed vote tally.
func (a *Answer) Score() int { return len(a.Upvotes) - len(a.Downvotes) }
