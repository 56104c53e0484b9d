package cli

import (
	"context"
	"fmt"
)

// Leaderboard prints users ordered by points (server order).
func (a *App) Leaderboard(ctx context.Context) error {
	users, err := a.forum.Leaderboard(ctx)
	if err != nil {
		fmt.Println("Failed to load the leaderboard. Please try again.")
		return err
	}

	for i, u := range users {
		fmt.Printf("%2d. %-20s %d points\n", i+1, u.Username, u.Points)
	}
	return nil
}
