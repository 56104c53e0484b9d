// Package models defines the wire types exchanged with the PeerSphere REST
// collaborator. Field tags follow the server's JSON payloads.
package models

import "time"

// User is the client-held snapshot of an authenticated profile.
// QuestionsAsked and AnswersGiven hold entity ids, not embedded documents.
type User struct {
	ID             string    `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Points         int       `json:"points"`
	QuestionsAsked []string  `json:"questionsAsked"`
	AnswersGiven   []string  `json:"answersGiven"`
	CreatedAt      time.Time `json:"createdAt"`
}
