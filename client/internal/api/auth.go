package api

import (
	"context"
	"net/http"

	"github.com/pujadesk/pujadesk/client/internal/types"
)

// Login exchanges credentials for a token and profile.
func Login(ctx context.Context, c *Caller, creds types.Credentials) (*types.AuthPayload, error) {
	env, err := c.DoJSON(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	var payload types.AuthPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates an account and returns the initial token and profile.
func Register(ctx context.Context, c *Caller, req types.RegisterRequest) (*types.AuthPayload, error) {
	env, err := c.DoJSON(ctx, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	var payload types.AuthPayload
	if err := env.Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout tells the server to drop the session. Best effort; callers
// clear local state regardless of the outcome.
func Logout(ctx context.Context, c *Caller) error {
	_, err := c.DoJSON(ctx, http.MethodPost, "/auth/logout", nil)
	return err
}

// GetProfile fetches the session for the current bearer token.
func GetProfile(ctx context.Context, c *Caller) (*types.Session, error) {
	env, err := c.DoJSON(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	var s types.Session
	if err := env.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateProfile patches mutable profile fields and returns the result.
func UpdateProfile(ctx context.Context, c *Caller, req types.UpdateProfileRequest) (*types.Session, error) {
	env, err := c.DoJSON(ctx, http.MethodPut, "/auth/profile", req)
	if err != nil {
		return nil, err
	}
	var s types.Session
	if err := env.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ChangePassword rotates the account password.
func ChangePassword(ctx context.Context, c *Caller, req types.ChangePasswordRequest) error {
	_, err := c.DoJSON(ctx, http.MethodPost, "/auth/change-password", req)
	return err
}

// ForgotPassword starts a password reset for the given email.
func ForgotPassword(ctx context.Context, c *Caller, email string) error {
	_, err := c.DoJSON(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email})
	return err
}

// ResetPassword completes a password reset with the emailed token.
func ResetPassword(ctx context.Context, c *Caller, req types.ResetPasswordRequest) error {
	_, err := c.DoJSON(ctx, http.MethodPost, "/auth/reset-password", req)
	return err
}
