package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kartiksirsilla09/peersphere-cli/internal/common"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) { return s.token, s.err }

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, staticTokens{token: token}, logging.NewNullLogger())
}

func TestDo_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID, gotCT string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotCT = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}), "tok-123")

	_, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotReqID)
	require.Equal(t, "application/json", gotCT)
}

func TestDo_AnonymousOmitsAuthorization(t *testing.T) {
	var gotAuth string
	seen := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		seen = true
		_, _ = w.Write([]byte(`[]`))
	}), "")

	_, err := c.ListQuestions(context.Background())
	require.NoError(t, err)
	require.True(t, seen)
	require.Empty(t, gotAuth)
}

func TestDo_ServerMessageExtracted(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}), "")

	_, err := c.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", Message(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestDo_StatusSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, common.ErrorUnauthorized},
		{http.StatusNotFound, common.ErrorNotFound},
	}

	for _, tc := range tests {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}), "tok")

		_, err := c.Profile(context.Background())
		require.ErrorIs(t, err, tc.want)
	}
}

func TestDo_MalformedErrorBodyKeepsStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>Bad Gateway</html>`))
	}), "")

	_, err := c.GetQuestion(context.Background(), "q1")
	require.Error(t, err)
	require.Empty(t, Message(err))
	require.EqualError(t, err, "server returned status 500")
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections from now on
	c := New(srv.URL, time.Second, staticTokens{}, logging.NewNullLogger())

	_, err := c.ListQuestions(context.Background())
	require.ErrorIs(t, err, common.ErrorUnavailable)
}

func TestLogin_RequestShapeAndDecode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["emailOrUsername"])
		require.Equal(t, "pw", body["password"])

		// the server flattens the profile and the token into one object
		_, _ = w.Write([]byte(`{"_id":"u1","username":"alice","points":12,"token":"tok-abc"}`))
	}), "")

	resp, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-abc", resp.Token)
	require.Equal(t, "u1", resp.User.ID)
	require.Equal(t, 12, resp.User.Points)
}

func TestVoteEndpoints_Paths(t *testing.T) {
	var paths []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}), "tok")

	ctx := context.Background()
	_, err := c.UpvoteQuestion(ctx, "q1")
	require.NoError(t, err)
	_, err = c.DownvoteQuestion(ctx, "q1")
	require.NoError(t, err)
	_, err = c.UpvoteAnswer(ctx, "a1")
	require.NoError(t, err)
	_, err = c.DownvoteAnswer(ctx, "a1")
	require.NoError(t, err)
	_, err = c.AcceptAnswer(ctx, "a1")
	require.NoError(t, err)

	require.Equal(t, []string{
		"PUT /questions/q1/upvote",
		"PUT /questions/q1/downvote",
		"PUT /answers/a1/upvote",
		"PUT /answers/a1/downvote",
		"PUT /answers/a1/accept",
	}, paths)
}

func TestGetQuestion_DecodesAnswers(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/questions/q1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"_id":"q1","title":"How do goroutines work?",
			"upvotes":["u1"],"downvotes":[],
			"answers":[{"_id":"a1","content":"like this","isAccepted":true,"upvotes":["u1","u2"]}]
		}`))
	}), "")

	q, err := c.GetQuestion(context.Background(), "q1")
	require.NoError(t, err)
	require.Equal(t, "q1", q.ID)
	require.Equal(t, 1, q.Score())
	require.Len(t, q.Answers, 1)
	require.True(t, q.Answers[0].IsAccepted)
	require.Equal(t, 2, q.Answers[0].Score())
}

func TestUpdateAndDelete_Paths(t *testing.T) {
	var paths []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}), "tok")

	ctx := context.Background()
	_, err := c.UpdateQuestion(ctx, "q1", "new title", "new content", []string{"go"})
	require.NoError(t, err)
	require.NoError(t, c.DeleteQuestion(ctx, "q1"))
	_, err = c.UpdateAnswer(ctx, "a1", "new content")
	require.NoError(t, err)
	require.NoError(t, c.DeleteAnswer(ctx, "a1"))

	require.Equal(t, []string{
		"PUT /questions/q1",
		"DELETE /questions/q1",
		"PUT /answers/a1",
		"DELETE /answers/a1",
	}, paths)
}

func TestErrorIs_NilForOtherStatuses(t *testing.T) {
	err := &Error{Status: http.StatusConflict, Message: "duplicate"}
	require.False(t, errors.Is(err, common.ErrorUnauthorized))
	require.False(t, errors.Is(err, common.ErrorNotFound))
	require.Equal(t, "duplicate", err.Error())
}
