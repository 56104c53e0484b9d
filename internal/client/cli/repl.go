package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Ask(ctx context.Context) error
	Answer(ctx context.Context, questionID string) error
	Accept(ctx context.Context, questionID, answerID string) error
	Vote(ctx context.Context, dir services.Direction, questionID, answerID string) error
	Leaderboard(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the PeerSphere CLI.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on reader EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ps> %s ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err == io.EOF {
				return
			}
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show <id>, ask, answer <question-id>, upvote|downvote <question-id> [answer-id], accept <question-id> <answer-id>, leaderboard, profile, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, (l)ist, show <id>, leaderboard, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <question-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "ask":
			_ = a.Ask(ctx)

		case "answer":
			if len(args) != 1 {
				printlnFn("Usage: answer <question-id>")
				continue
			}
			_ = a.Answer(ctx, args[0])

		case "accept":
			if len(args) != 2 {
				printlnFn("Usage: accept <question-id> <answer-id>")
				continue
			}
			_ = a.Accept(ctx, args[0], args[1])

		case "upvote", "downvote":
			if len(args) < 1 || len(args) > 2 {
				printlnFn(fmt.Sprintf("Usage: %s <question-id> [answer-id]", cmd))
				continue
			}
			dir := services.VoteUp
			if cmd == "downvote" {
				dir = services.VoteDown
			}
			answerID := ""
			if len(args) == 2 {
				answerID = args[1]
			}
			_ = a.Vote(ctx, dir, args[0], answerID)

		case "leaderboard":
			_ = a.Leaderboard(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err == io.EOF {
			return
		}
	}
}
