package cli

import (
	"context"
	"fmt"
)

// Profile prints the profile overview: identity, contribution counters, and
// the resolved question/answer details.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("You need to be logged in to view your profile")
		return nil
	}

	ov, err := a.profile.Overview(ctx)
	if err != nil {
		fmt.Println("Failed to load your profile. Please try again.")
		return err
	}

	fmt.Printf("%s <%s>\n", ov.User.Username, ov.User.Email)
	fmt.Printf("Joined: %s\n", ov.User.CreatedAt.Format("January 02, 2006"))
	fmt.Printf("%d points\n\n", ov.User.Points)

	fmt.Printf("Questions Asked: %d\n", ov.QuestionsAsked)
	for _, q := range ov.Questions {
		fmt.Printf("  %s  [%+d] %s\n", q.ID, q.Score(), q.Title)
	}

	fmt.Printf("Answers Given: %d\n", ov.AnswersGiven)
	for _, ans := range ov.Answers {
		accepted := ""
		if ans.IsAccepted {
			accepted = " [accepted]"
		}
		fmt.Printf("  %s  [%+d]%s on question %s\n", ans.ID, ans.Score(), accepted, ans.Question)
	}
	return nil
}
