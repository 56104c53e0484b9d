package cli

import (
	"context"
	"fmt"
	"os"
)

// Answer prompts for a body and posts an answer to the given question, then
// re-fetches the question so the new answer list is authoritative.
func (a *App) Answer(ctx context.Context, questionID string) error {
	if !a.isLoggedIn() {
		fmt.Println("You must be logged in to answer a question")
		return nil
	}

	content, err := GetMultiline(a.reader, "Write your answer", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Println("Answer cannot be empty")
		return nil
	}

	if _, err := a.forum.CreateAnswer(ctx, questionID, content); err != nil {
		fmt.Println("Failed to submit your answer. Please try again.")
		return err
	}

	q, err := a.forum.GetQuestion(ctx, questionID)
	if err != nil {
		fmt.Println("Failed to load the question. Please try again.")
		return err
	}

	a.status.SetSuccess("Your answer has been posted successfully!")
	a.renderQuestion(q)
	return nil
}

// Accept marks an answer as accepted and shows the refreshed question.
func (a *App) Accept(ctx context.Context, questionID, answerID string) error {
	if !a.isLoggedIn() {
		fmt.Println("You must be logged in to accept an answer")
		return nil
	}

	if _, err := a.forum.AcceptAnswer(ctx, answerID); err != nil {
		fmt.Println("Failed to accept the answer. Please try again.")
		return err
	}

	q, err := a.forum.GetQuestion(ctx, questionID)
	if err != nil {
		fmt.Println("Failed to load the question. Please try again.")
		return err
	}

	a.status.SetSuccess("Answer accepted.")
	a.renderQuestion(q)
	return nil
}
