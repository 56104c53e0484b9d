package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
)

// List prints all questions with their score and answer count.
func (a *App) List(ctx context.Context) error {
	questions, err := a.forum.ListQuestions(ctx)
	if err != nil {
		fmt.Println("Failed to load questions. Please try again.")
		return err
	}

	if len(questions) == 0 {
		fmt.Println("No questions yet. Be the first to ask one!")
		return nil
	}

	for _, q := range questions {
		fmt.Printf("%s  [%+d] %s (%d answers) by %s\n",
			q.ID, q.Score(), q.Title, len(q.Answers), q.Author.Username)
	}
	return nil
}

// Show fetches one question with its answers and renders it together with
// any transient status messages.
func (a *App) Show(ctx context.Context, id string) error {
	q, err := a.forum.GetQuestion(ctx, id)
	if err != nil {
		fmt.Println("Failed to load the question. Please try again.")
		return err
	}

	a.renderQuestion(q)
	return nil
}

// Ask prompts for a title, body and tags and posts a new question.
func (a *App) Ask(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please login to ask a question.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter a title for your question", os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Println("Title cannot be empty")
		return nil
	}

	content, err := GetMultiline(a.reader, "Describe your question", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Println("Question content cannot be empty")
		return nil
	}

	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	q, err := a.forum.CreateQuestion(ctx, title, content, tags)
	if err != nil {
		fmt.Println("Failed to post your question. Please try again.")
		return err
	}

	a.status.SetSuccess("Your question has been posted successfully!")
	fmt.Printf("Posted question %s\n", q.ID)
	return nil
}

// renderQuestion prints status banners, the question, and its answers.
func (a *App) renderQuestion(q *models.Question) {
	if msg := a.status.Error(); msg != "" {
		fmt.Printf("! %s\n", msg)
	}
	if msg := a.status.Success(); msg != "" {
		fmt.Printf("* %s\n", msg)
	}

	pulse := ""
	if a.status.Active("vote-" + q.ID) {
		pulse = " <<"
	}
	fmt.Printf("\n%s\n", q.Title)
	fmt.Printf("[%+d]%s  asked by %s, %d views\n", q.Score(), pulse, q.Author.Username, q.Views)
	if len(q.Tags) > 0 {
		fmt.Printf("tags: %v\n", q.Tags)
	}
	fmt.Printf("\n%s\n", q.Content)

	if len(q.Answers) == 0 {
		fmt.Println("\nNo answers yet.")
		return
	}

	fmt.Printf("\n%d answer(s):\n", len(q.Answers))
	for _, ans := range q.Answers {
		accepted := ""
		if ans.IsAccepted {
			accepted = " [accepted]"
		}
		pulse := ""
		if a.status.Active("vote-" + ans.ID) {
			pulse = " <<"
		}
		fmt.Printf("\n%s  [%+d]%s%s by %s\n", ans.ID, ans.Score(), pulse, accepted, ans.Author.Username)
		fmt.Println(ans.Content)
	}
}
