package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

// profileFetchLimit bounds concurrent question fetches during aggregation.
const profileFetchLimit = 4

// ProfileAPI is the slice of the REST client the profile service needs.
type ProfileAPI interface {
	Profile(ctx context.Context) (*models.User, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	MyAnswers(ctx context.Context) ([]models.Answer, error)
}

// Overview aggregates the profile page data. QuestionsAsked and AnswersGiven
// count the profile's id lists, not the fetched details, so partial fetch
// failures never change the displayed totals.
type Overview struct {
	User           models.User
	Questions      []models.Question
	Answers        []models.Answer
	QuestionsAsked int
	AnswersGiven   int
}

// ProfileService builds profile overviews.
type ProfileService struct {
	api    ProfileAPI
	logger logging.Logger
}

func NewProfileService(apiClient ProfileAPI, logger logging.Logger) *ProfileService {
	return &ProfileService{api: apiClient, logger: logger}
}

// Overview fetches the profile and resolves each asked-question id to its
// details with one independent fetch per id. A failed fetch is logged and
// skipped; it never aborts the others. The answers list is fetched in one
// call and likewise tolerated on failure.
func (p *ProfileService) Overview(ctx context.Context) (*Overview, error) {
	u, err := p.api.Profile(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		User:           *u,
		QuestionsAsked: len(u.QuestionsAsked),
		AnswersGiven:   len(u.AnswersGiven),
	}

	fetched := make([]*models.Question, len(u.QuestionsAsked))
	var g errgroup.Group
	g.SetLimit(profileFetchLimit)
	for i, id := range u.QuestionsAsked {
		g.Go(func() error {
			q, err := p.api.GetQuestion(ctx, id)
			if err != nil {
				p.logger.Warn(ctx, "fetching asked question", "id", id, "error", err)
				return nil
			}
			fetched[i] = q
			return nil
		})
	}
	_ = g.Wait()

	for _, q := range fetched {
		if q != nil {
			ov.Questions = append(ov.Questions, *q)
		}
	}

	if len(u.AnswersGiven) > 0 {
		answers, err := p.api.MyAnswers(ctx)
		if err != nil {
			p.logger.Warn(ctx, "fetching posted answers", "error", err)
		} else {
			ov.Answers = answers
		}
	}

	return ov, nil
}
