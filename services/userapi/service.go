package userapi

import (
	"context"
	"errors"

	"github.com/arenahub/clientkit/core/apiclient"
	"github.com/arenahub/clientkit/core/authstate"
	"github.com/arenahub/clientkit/services/authapi"
)

const (
	profilePath  = "/users/profile"
	passwordPath = "/users/password"
	languagePath = "/users/language"
)

// ErrPasswordMismatch is returned when the new password and its confirmation
// differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// UpdateProfileRequest carries editable profile fields. Empty fields are
// omitted so the backend leaves them untouched.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// UpdatePasswordRequest carries a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Service wraps the user profile endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a user service over the given transport.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// GetProfile returns the current user's profile.
func (s *Service) GetProfile(ctx context.Context) (authstate.User, error) {
	var user authstate.User
	if err := s.client.Get(ctx, profilePath, &user); err != nil {
		return authstate.User{}, err
	}
	return user, nil
}

// UpdateProfile updates the current user's profile and returns the stored
// result.
func (s *Service) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (authstate.User, error) {
	var user authstate.User
	if err := s.client.Put(ctx, profilePath, req, &user); err != nil {
		return authstate.User{}, err
	}
	return user, nil
}

// UpdatePassword changes the current user's password. The new password is
// checked against the policy and its confirmation client-side.
func (s *Service) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) error {
	if req.CurrentPassword == "" {
		return authapi.ErrPasswordRequired
	}
	if err := authapi.ValidatePassword(req.NewPassword); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return s.client.Put(ctx, passwordPath, req, nil)
}

// GetLanguage returns the user's persisted language preference.
func (s *Service) GetLanguage(ctx context.Context) (string, error) {
	var resp struct {
		Language string `json:"language"`
	}
	if err := s.client.Get(ctx, languagePath, &resp); err != nil {
		return "", err
	}
	return resp.Language, nil
}

// UpdateLanguage persists a new language preference.
func (s *Service) UpdateLanguage(ctx context.Context, code string) error {
	body := map[string]string{"language": code}
	return s.client.Put(ctx, languagePath, body, nil)
}
