package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/services"
)

// Vote applies a vote to a question, or to one of its answers when answerID
// is non-empty, and re-renders the refreshed question.
func (a *App) Vote(ctx context.Context, dir services.Direction, questionID, answerID string) error {
	if !a.isLoggedIn() {
		// Disabled surface, not an error.
		fmt.Println("Please login to vote.")
		return nil
	}
	if a.voter.InFlight() {
		fmt.Println("Another vote is still pending, hold on.")
		return nil
	}

	q, err := a.forum.GetQuestion(ctx, questionID)
	if err != nil {
		fmt.Println("Failed to load the question. Please try again.")
		return err
	}

	var res *services.VoteResult
	pulseKey := "vote-" + questionID
	if answerID == "" {
		res, err = a.voter.VoteQuestion(ctx, q, dir)
	} else {
		ans := findAnswer(q, answerID)
		if ans == nil {
			fmt.Println("No such answer on this question.")
			return nil
		}
		pulseKey = "vote-" + answerID
		res, err = a.voter.VoteAnswer(ctx, questionID, ans, dir)
	}

	if err != nil {
		var dup *services.DuplicateVoteError
		switch {
		case errors.As(err, &dup):
			a.status.SetError(dup.Error())
			fmt.Println(dup.Error())
			return nil
		case errors.Is(err, services.ErrVoteInFlight):
			fmt.Println("Another vote is still pending, hold on.")
			return nil
		default:
			fmt.Printf("Failed to %svote. Please try again.\n", dir)
			return err
		}
	}

	a.status.ClearError()
	a.status.SetSuccess(res.Message)
	a.status.Pulse(pulseKey)
	a.renderQuestion(res.Question)
	return nil
}

func findAnswer(q *models.Question, answerID string) *models.Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == answerID {
			return &q.Answers[i]
		}
	}
	return nil
}
