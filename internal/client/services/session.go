// Package services contains application services for the PeerSphere client:
// the session manager owning the authenticated user, the vote mutator, and
// profile aggregation.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cenkalti/backoff/v5"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/api"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
	"github.com/kartiksirsilla09/peersphere-cli/internal/client/repositories/credentials"
	"github.com/kartiksirsilla09/peersphere-cli/internal/common"
	"github.com/kartiksirsilla09/peersphere-cli/internal/logging"
)

// Fallback messages shown when the server did not supply one.
const (
	msgLoginFailed     = "Failed to login. Please try again."
	msgRegisterFailed  = "Failed to register. Please try again."
	msgOTPSendFailed   = "Failed to send OTP. Please try again."
	msgOTPVerifyFailed = "Failed to verify OTP. Please try again."
)

// AuthAPI is the slice of the REST client the session manager needs.
type AuthAPI interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, emailOrUsername, password string) (*models.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (*models.ResetStatus, error)
	VerifyOTP(ctx context.Context, email, otp string) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
}

// Session owns the authenticated-user value. It derives the user from the
// persisted credential token at startup and mutates it through explicit
// operations. All other components hold read-only snapshots.
//
// Session-affecting operations are serialized through one mutex, so the last
// operation to start is also the last to publish its result; a pending login
// can never overwrite a later logout.
type Session struct {
	api             AuthAPI
	creds           credentials.Repository
	logger          logging.Logger
	restoreMaxTries uint

	// opMu serializes session-affecting operations.
	opMu sync.Mutex

	stateMu sync.RWMutex
	user    *models.User
	lastErr string
	subs    []func(*models.User)

	inFlight atomic.Int32
}

// NewSession constructs a Session bound to the given API client and
// credential store. restoreMaxTries bounds the startup restore retries.
func NewSession(apiClient AuthAPI, creds credentials.Repository, logger logging.Logger, restoreMaxTries uint) *Session {
	if restoreMaxTries == 0 {
		restoreMaxTries = 1
	}
	return &Session{
		api:             apiClient,
		creds:           creds,
		logger:          logger,
		restoreMaxTries: restoreMaxTries,
	}
}

// Login authenticates with a username-or-email identifier. On success it
// persists the credential token (exactly one store write), publishes the
// user and clears any prior error. On failure it records a display-ready
// message and returns the error so callers can keep their own submission
// state consistent.
func (s *Session) Login(ctx context.Context, identifier, password string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOp()
	defer s.endOp()

	if strings.TrimSpace(identifier) == "" || password == "" {
		s.setErr("Email/username and password are required.")
		return fmt.Errorf("%w: email/username and password are required", common.ErrorValidation)
	}

	resp, err := s.api.Login(ctx, identifier, password)
	if err != nil {
		s.setErr(displayMessage(err, msgLoginFailed))
		return err
	}

	s.establish(ctx, resp)
	return nil
}

// Register creates an account and, on success, establishes a session with
// the same side effects as Login.
func (s *Session) Register(ctx context.Context, username, email, password string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOp()
	defer s.endOp()

	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		s.setErr("Username, email and password are required.")
		return fmt.Errorf("%w: username, email and password are required", common.ErrorValidation)
	}

	resp, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		s.setErr(displayMessage(err, msgRegisterFailed))
		return err
	}

	s.establish(ctx, resp)
	return nil
}

// Logout deletes the credential token and clears the user. No network call
// is made; logging out while already logged out is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOp()
	defer s.endOp()

	if err := s.creds.Delete(ctx); err != nil {
		s.logger.Error(ctx, "deleting credential token", "error", err)
	}
	s.publish(nil)
}

// ForgotPassword asks the server to dispatch a one-time code. The session is
// untouched; the returned status carries the server message and, on
// non-production deployments, a preview link to the dispatched email.
func (s *Session) ForgotPassword(ctx context.Context, email string) (*models.ResetStatus, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOp()
	defer s.endOp()

	if strings.TrimSpace(email) == "" {
		s.setErr("Email is required.")
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	st, err := s.api.RequestPasswordReset(ctx, email)
	if err != nil {
		s.setErr(displayMessage(err, msgOTPSendFailed))
		return nil, err
	}
	return st, nil
}

// VerifyOTP exchanges a one-time code for a session, with the same side
// effects as Login.
func (s *Session) VerifyOTP(ctx context.Context, email, otp string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOp()
	defer s.endOp()

	if strings.TrimSpace(otp) == "" {
		s.setErr("Please enter the OTP sent to your email.")
		return fmt.Errorf("%w: otp is required", common.ErrorValidation)
	}

	resp, err := s.api.VerifyOTP(ctx, email, otp)
	if err != nil {
		s.setErr(displayMessage(err, msgOTPVerifyFailed))
		return err
	}

	s.establish(ctx, resp)
	return nil
}

// Restore resolves a persisted credential token to a user at startup.
// A 401 from the profile lookup means the token is stale: it is deleted and
// the session stays anonymous, with a nil error. Transient failures are
// retried with capped exponential backoff; when the retries are exhausted
// the token is left in place and the session stays anonymous until the next
// explicit login.
func (s *Session) Restore(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.beginOp()
	defer s.endOp()

	token, err := s.creds.Token(ctx)
	if err != nil {
		s.logger.Error(ctx, "reading credential token", "error", err)
		return err
	}
	if token == "" {
		return nil
	}

	operation := func() (*models.User, error) {
		u, err := s.api.Profile(ctx)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return u, nil
	}

	u, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(s.restoreMaxTries),
	)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			if derr := s.creds.Delete(ctx); derr != nil {
				s.logger.Error(ctx, "deleting stale credential token", "error", derr)
			}
			s.logger.Info(ctx, "stale credential token dropped")
			return nil
		}
		s.logger.Warn(ctx, "session restore failed, token kept", "error", err)
		return err
	}

	s.publish(u)
	return nil
}

// Current returns a snapshot of the authenticated user, or nil when
// anonymous.
func (s *Session) Current() *models.User {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return snapshot(s.user)
}

// Err returns the display-ready message of the last failed operation, or ""
// after a success or ClearErr.
func (s *Session) Err() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastErr
}

// ClearErr discards the recorded error message.
func (s *Session) ClearErr() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.lastErr = ""
}

// Loading reports whether a session-affecting call is in flight.
func (s *Session) Loading() bool {
	return s.inFlight.Load() > 0
}

// Subscribe registers fn to be called with a user snapshot after every
// session change. Callbacks run on the mutating goroutine and must not block.
func (s *Session) Subscribe(fn func(*models.User)) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Session) beginOp() {
	s.inFlight.Add(1)
	s.stateMu.Lock()
	s.lastErr = ""
	s.stateMu.Unlock()
}

func (s *Session) endOp() {
	s.inFlight.Add(-1)
}

func (s *Session) setErr(msg string) {
	s.stateMu.Lock()
	s.lastErr = msg
	s.stateMu.Unlock()
}

// establish persists the token and publishes the authenticated user.
func (s *Session) establish(ctx context.Context, resp *models.AuthResponse) {
	if err := s.creds.Save(ctx, resp.Token); err != nil {
		s.logger.Error(ctx, "saving credential token", "error", err)
	}
	u := resp.User
	s.publish(&u)
}

func (s *Session) publish(u *models.User) {
	s.stateMu.Lock()
	s.user = u
	subs := make([]func(*models.User), len(s.subs))
	copy(subs, s.subs)
	s.stateMu.Unlock()

	for _, fn := range subs {
		fn(snapshot(u))
	}
}

func snapshot(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// displayMessage prefers the server-supplied message over the fixed
// fallback.
func displayMessage(err error, fallback string) string {
	if msg := api.Message(err); msg != "" {
		return msg
	}
	return fallback
}
