// Package cli implements the interactive command surface of the PeerSphere
// client: a REPL that dispatches to session, forum and vote operations.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/api"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/config"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/repositories/credentials"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/services"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/status"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

// SessionService is the session-manager surface the CLI depends on. The real
// *services.Session satisfies it; tests can provide a stub.
type SessionService interface {
	Login(ctx context.Context, identifier, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context)
	ForgotPassword(ctx context.Context, email string) (*models.ResetStatus, error)
	VerifyOTP(ctx context.Context, email, otp string) error
	Restore(ctx context.Context) error
	Current() *models.User
	Err() string
	Subscribe(fn func(*models.User))
}

// VoteService is the vote-mutator surface the CLI depends on.
type VoteService interface {
	VoteQuestion(ctx context.Context, q *models.Question, dir services.Direction) (*services.VoteResult, error)
	VoteAnswer(ctx context.Context, questionID string, a *models.Answer, dir services.Direction) (*services.VoteResult, error)
	InFlight() bool
}

// ForumAPI is the REST-client surface used by the question/answer commands.
type ForumAPI interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	CreateQuestion(ctx context.Context, title, content string, tags []string) (*models.Question, error)
	CreateAnswer(ctx context.Context, questionID, content string) (*models.Answer, error)
	AcceptAnswer(ctx context.Context, id string) (*models.Answer, error)
	Leaderboard(ctx context.Context) ([]models.User, error)
}

// ProfileService builds the profile overview.
type ProfileService interface {
	Overview(ctx context.Context) (*services.Overview, error)
}

type App struct {
	config  *config.Config
	session SessionService
	voter   VoteService
	forum   ForumAPI
	profile ProfileService
	status  *status.Board
	logger  logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	db, err := credentials.Open(ctx, cfg.CredentialDBPath)
	if err != nil {
		logger.Error(ctx, "initializing credential store", "error", err)
		return nil, err
	}

	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.New(cfg.ServerBaseURL, cfg.RequestTimeout, creds, logger)
	session := services.NewSession(apiClient, creds, logger, cfg.RestoreMaxTries)

	return &App{
		config:  cfg,
		session: session,
		voter:   services.NewVoter(apiClient, session, logger),
		forum:   apiClient,
		profile: services.NewProfileService(apiClient, logger),
		status:  status.NewBoard(),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}, nil
}

// Run restores a persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Welcome to PeerSphere CLI (type 'help' for commands)")

	a.session.Subscribe(func(u *models.User) {
		if u != nil {
			fmt.Printf("Logged in as %s\n", u.Username)
		}
	})

	if err := a.session.Restore(ctx); err != nil {
		fmt.Println("Could not restore your session. Your saved login is kept; try again later or login now.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the credential store and cancels pending status timers.
func (a *App) Close() {
	a.status.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}
