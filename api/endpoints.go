package api

import (
	"context"
	"net/http"

	"github.com/haruapp/haru/auth"
	"github.com/haruapp/haru/internal/models"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Premium      bool   `json:"premium"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

// SignUp registers a new account and activates the returned session.
func (c *Client) SignUp(ctx context.Context, email, password, nickname string) error {
	var tokens tokenResponse

	err := c.do(ctx, http.MethodPost, "/auth/signup", credentials{
		Email:    email,
		Password: password,
		Nickname: nickname,
	}, &tokens)
	if err != nil {
		return err
	}

	c.session.SetAuthData(
		tokens.AccessToken,
		tokens.RefreshToken,
		tokens.UserID,
		auth.WithProfile(nickname, ""),
		auth.WithPremium(tokens.Premium),
	)

	return nil
}

// SignIn authenticates an existing account and activates the returned
// session.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	var tokens tokenResponse

	err := c.do(ctx, http.MethodPost, "/auth/signin", credentials{
		Email:    email,
		Password: password,
	}, &tokens)
	if err != nil {
		return err
	}

	c.session.SetAuthData(
		tokens.AccessToken,
		tokens.RefreshToken,
		tokens.UserID,
		auth.WithPremium(tokens.Premium),
	)

	return nil
}

// Logout tells the backend to revoke the session, then clears it locally.
// The local session is cleared even if the backend call fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)

	c.session.Logout()

	return err
}

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile

	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// ProfilePatch carries the mutable profile fields.
type ProfilePatch struct {
	Nickname     *string `json:"nickname,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// UpdateProfile patches the signed-in user's profile and mirrors the result
// into the local session.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*models.Profile, error) {
	var profile models.Profile

	err := c.do(ctx, http.MethodPatch, "/users/me", patch, &profile)
	if err != nil {
		return nil, err
	}

	c.session.UpdateProfile(
		profile.Nickname,
		profile.ProfileImage,
		profile.Premium,
	)

	return &profile, nil
}

// SetOnboardingType records the user's onboarding choice.
func (c *Client) SetOnboardingType(ctx context.Context, onboardingType string) error {
	return c.do(ctx, http.MethodPatch, "/users/me/onboarding", map[string]string{
		"type": onboardingType,
	}, nil)
}

// SetLanguage records the user's language preference.
func (c *Client) SetLanguage(ctx context.Context, language string) error {
	return c.do(ctx, http.MethodPatch, "/users/me/language", map[string]string{
		"language": language,
	}, nil)
}

// Routines fetches the user's recurring habit definitions.
func (c *Client) Routines(ctx context.Context) ([]models.Routine, error) {
	var routines []models.Routine

	if err := c.do(ctx, http.MethodGet, "/routines", nil, &routines); err != nil {
		return nil, err
	}

	return routines, nil
}

// SuggestGoal asks the backend for an AI-generated focus goal suggestion.
func (c *Client) SuggestGoal(ctx context.Context, topic string) (string, error) {
	var out struct {
		Suggestion string `json:"suggestion"`
	}

	err := c.do(ctx, http.MethodPost, "/ai/goal-suggestion", map[string]string{
		"topic": topic,
	}, &out)
	if err != nil {
		return "", err
	}

	return out.Suggestion, nil
}
