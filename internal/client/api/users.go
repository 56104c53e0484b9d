package api

import (
	"context"

	"github.com/kartiksirsilla09/peersphere-cli/internal/client/models"
)

// Register creates an account. Success implicitly authenticates: the
// response carries a fresh credential token alongside the profile.
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out models.AuthResponse
	if err := c.post(ctx, "/users/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token and profile. The identifier may be
// either a username or an email address.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (*models.AuthResponse, error) {
	body := map[string]string{"emailOrUsername": emailOrUsername, "password": password}
	var out models.AuthResponse
	if err := c.post(ctx, "/users/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordReset asks the server to dispatch a one-time code to the
// given address. No session is established.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*models.ResetStatus, error) {
	body := map[string]string{"email": email}
	var out models.ResetStatus
	if err := c.post(ctx, "/users/forgot-password", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP exchanges a one-time code for a token and profile, with the same
// success shape as Login.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*models.AuthResponse, error) {
	body := map[string]string{"email": email, "otp": otp}
	var out models.AuthResponse
	if err := c.post(ctx, "/users/verify-otp", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile resolves the current credential token to the full profile.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/users/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard returns users ordered by points.
func (c *Client) Leaderboard(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.get(ctx, "/users/leaderboard", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyAnswers lists the answers posted by the authenticated user.
func (c *Client) MyAnswers(ctx context.Context) ([]models.Answer, error) {
	var out []models.Answer
	if err := c.get(ctx, "/users/answers", &out); err != nil {
		return nil, err
	}
	return out, nil
}
