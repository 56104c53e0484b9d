package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

// Direction of a vote.
type Direction string

const (
	VoteUp   Direction = "up"
	VoteDown Direction = "down"
)

var (
	// ErrLoginRequired means no user is logged in; callers should present a
	// disabled surface with a login prompt, not a failure.
	ErrLoginRequired = errors.New("login required")

	// ErrVoteInFlight means another vote call is still pending.
	ErrVoteInFlight = errors.New("another vote is already in progress")
)

// DuplicateVoteError is a local rejection: the user already voted in the
// requested direction, so no network call was made.
type DuplicateVoteError struct {
	Entity    string // "question" or "answer"
	Direction Direction
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("You have already %svoted this %s", e.Direction, e.Entity)
}

// Votable is an entity holding mutually exclusive upvoter/downvoter id sets.
// Both models.Question and models.Answer satisfy it.
type Votable interface {
	Upvoters() []string
	Downvoters() []string
}

// Decide reports how a vote by userID in direction dir would land on v:
// duplicate means the user is already in the requested set and the vote must
// be rejected locally; switched means the opposite set holds the user and
// the server will move the vote across. The sets themselves are never
// modified locally.
func Decide(v Votable, userID string, dir Direction) (duplicate, switched bool) {
	same, opposite := v.Upvoters(), v.Downvoters()
	if dir == VoteDown {
		same, opposite = opposite, same
	}
	if slices.Contains(same, userID) {
		return true, false
	}
	return false, slices.Contains(opposite, userID)
}

// VoteAPI is the slice of the REST client the voter needs.
type VoteAPI interface {
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	UpvoteQuestion(ctx context.Context, id string) (*models.Question, error)
	DownvoteQuestion(ctx context.Context, id string) (*models.Question, error)
	UpvoteAnswer(ctx context.Context, id string) (*models.Answer, error)
	DownvoteAnswer(ctx context.Context, id string) (*models.Answer, error)
}

// UserSource exposes the current session user.
type UserSource interface {
	Current() *models.User
}

// VoteResult carries the re-fetched parent question, which is the only
// authoritative source of post-vote tallies, plus a confirmation message
// decided from pre-call set membership.
type VoteResult struct {
	Question *models.Question
	Message  string
}

// Voter applies votes to questions and answers. A single in-flight flag
// rejects overlapping votes for the lifetime of any pending call.
type Voter struct {
	api    VoteAPI
	users  UserSource
	logger logging.Logger

	inFlight atomic.Bool
}

func NewVoter(apiClient VoteAPI, users UserSource, logger logging.Logger) *Voter {
	return &Voter{api: apiClient, users: users, logger: logger}
}

// InFlight reports whether a vote call is pending; the command surface uses
// it to disable all vote actions at once.
func (v *Voter) InFlight() bool {
	return v.inFlight.Load()
}

// VoteQuestion votes on q in the given direction on behalf of the current
// user, then re-fetches the question to resynchronize counts.
func (v *Voter) VoteQuestion(ctx context.Context, q *models.Question, dir Direction) (*VoteResult, error) {
	user := v.users.Current()
	if user == nil {
		return nil, ErrLoginRequired
	}

	duplicate, switched := Decide(q, user.ID, dir)
	if duplicate {
		return nil, &DuplicateVoteError{Entity: "question", Direction: dir}
	}

	if !v.inFlight.CompareAndSwap(false, true) {
		return nil, ErrVoteInFlight
	}
	defer v.inFlight.Store(false)

	var err error
	if dir == VoteUp {
		_, err = v.api.UpvoteQuestion(ctx, q.ID)
	} else {
		_, err = v.api.DownvoteQuestion(ctx, q.ID)
	}
	if err != nil {
		return nil, err
	}

	fresh, err := v.api.GetQuestion(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	return &VoteResult{Question: fresh, Message: confirmation("Question", dir, switched)}, nil
}

// VoteAnswer votes on answer a, then re-fetches its parent question (which
// embeds all answers) to resynchronize counts.
func (v *Voter) VoteAnswer(ctx context.Context, questionID string, a *models.Answer, dir Direction) (*VoteResult, error) {
	user := v.users.Current()
	if user == nil {
		return nil, ErrLoginRequired
	}

	duplicate, switched := Decide(a, user.ID, dir)
	if duplicate {
		return nil, &DuplicateVoteError{Entity: "answer", Direction: dir}
	}

	if !v.inFlight.CompareAndSwap(false, true) {
		return nil, ErrVoteInFlight
	}
	defer v.inFlight.Store(false)

	var err error
	if dir == VoteUp {
		_, err = v.api.UpvoteAnswer(ctx, a.ID)
	} else {
		_, err = v.api.DownvoteAnswer(ctx, a.ID)
	}
	if err != nil {
		return nil, err
	}

	fresh, err := v.api.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	return &VoteResult{Question: fresh, Message: confirmation("Answer", dir, switched)}, nil
}

// confirmation composes the user-facing message: a "switched" variant when
// the opposite set held the user before the call.
func confirmation(entity string, dir Direction, switched bool) string {
	switch {
	case switched && dir == VoteUp:
		return "Your downvote has been changed to an upvote!"
	case switched && dir == VoteDown:
		return "Your upvote has been changed to a downvote."
	case dir == VoteUp:
		return entity + " upvoted successfully!"
	default:
		return entity + " downvoted."
	}
}
