package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

type fakeProfileAPI struct {
	mu sync.Mutex

	user       *models.User
	profileErr error

	questions map[string]*models.Question
	failIDs   map[string]bool

	answers    []models.Answer
	answersErr error

	questionCalls int
	answersCalls  int
}

func (f *fakeProfileAPI) Profile(context.Context) (*models.User, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.user, nil
}

func (f *fakeProfileAPI) GetQuestion(_ context.Context, id string) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questionCalls++
	if f.failIDs[id] {
		return nil, errors.New("fetch failed")
	}
	q, ok := f.questions[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return q, nil
}

func (f *fakeProfileAPI) MyAnswers(context.Context) ([]models.Answer, error) {
	f.mu.Lock()
	f.answersCalls++
	f.mu.Unlock()
	if f.answersErr != nil {
		return nil, f.answersErr
	}
	return f.answers, nil
}

func TestOverview_PartialQuestionFailure(t *testing.T) {
	f := &fakeProfileAPI{
		user: &models.User{
			ID:             "u1",
			Username:       "alice",
			QuestionsAsked: []string{"q1", "q2"},
		},
		questions: map[string]*models.Question{
			"q1": {ID: "q1", Title: "first"},
			"q2": {ID: "q2", Title: "second"},
		},
		failIDs: map[string]bool{"q2": true},
	}
	p := NewProfileService(f, logging.NewNullLogger())

	ov, err := p.Overview(context.Background())
	require.NoError(t, err)

	// the asked count comes from the id list, not from what was fetched
	require.Equal(t, 2, ov.QuestionsAsked)
	require.Len(t, ov.Questions, 1)
	require.Equal(t, "q1", ov.Questions[0].ID)
	require.Equal(t, 2, f.questionCalls, "exactly one fetch per asked id")
}

func TestOverview_AnswersFailureTolerated(t *testing.T) {
	f := &fakeProfileAPI{
		user: &models.User{
			ID:           "u1",
			AnswersGiven: []string{"a1", "a2", "a3"},
		},
		answersErr: errors.New("boom"),
	}
	p := NewProfileService(f, logging.NewNullLogger())

	ov, err := p.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, ov.AnswersGiven)
	require.Empty(t, ov.Answers)
}

func TestOverview_NoAnswersSkipsFetch(t *testing.T) {
	f := &fakeProfileAPI{user: &models.User{ID: "u1"}}
	p := NewProfileService(f, logging.NewNullLogger())

	ov, err := p.Overview(context.Background())
	require.NoError(t, err)
	require.Zero(t, ov.AnswersGiven)
	require.Zero(t, f.answersCalls)
	require.Zero(t, f.questionCalls)
}

func TestOverview_ProfileErrorAborts(t *testing.T) {
	f := &fakeProfileAPI{profileErr: errors.New("unauthorized")}
	p := NewProfileService(f, logging.NewNullLogger())

	_, err := p.Overview(context.Background())
	require.Error(t, err)
}

func TestOverview_PreservesQuestionOrder(t *testing.T) {
	f := &fakeProfileAPI{
		user: &models.User{
			ID:             "u1",
			QuestionsAsked: []string{"q3", "q1", "q2"},
			AnswersGiven:   []string{"a1"},
		},
		questions: map[string]*models.Question{
			"q1": {ID: "q1"},
			"q2": {ID: "q2"},
			"q3": {ID: "q3"},
		},
		answers: []models.Answer{{ID: "a1"}},
	}
	p := NewProfileService(f, logging.NewNullLogger())

	ov, err := p.Overview(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(ov.Questions))
	for _, q := range ov.Questions {
		ids = append(ids, q.ID)
	}
	require.Equal(t, []string{"q3", "q1", "q2"}, ids)
	require.Len(t, ov.Answers, 1)
	require.Equal(t, 3, f.questionCalls, "exactly one fetch per asked id")
}
