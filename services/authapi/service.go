package authapi

import (
	"context"
	"net/url"

	"github.com/arenahub/clientkit/core/apiclient"
	"github.com/arenahub/clientkit/core/authstate"
)

const (
	loginPath              = "/auth/login"
	logoutPath             = "/auth/logout"
	registerPath           = "/auth/register"
	mePath                 = "/auth/me"
	verifyEmailPath        = "/users/verify-email"
	resendVerificationPath = "/users/resend-verification"
	forgotPasswordPath     = "/users/forgot-password"
	resetPasswordPath      = "/users/reset-password"
	resetValidatePath      = "/users/reset-password/validate"
)

// Service wraps the authentication endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates an auth service over the given transport.
func New(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Login authenticates with email and password. On success the returned
// access token, if any, is stored on the transport.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if err := ValidateEmail(req.Email); err != nil {
		return LoginResponse{}, err
	}
	if req.Password == "" {
		return LoginResponse{}, ErrPasswordRequired
	}

	var resp LoginResponse
	if err := s.client.Post(ctx, loginPath, req, &resp); err != nil {
		return LoginResponse{}, err
	}

	if resp.AccessToken != "" {
		s.client.SetAccessToken(resp.AccessToken)
	}
	return resp, nil
}

// Logout invalidates the backend session and, on success, clears the stored
// access token.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.client.Post(ctx, logoutPath, nil, nil); err != nil {
		return err
	}
	s.client.ClearAccessToken()
	return nil
}

// Register creates a new account. Credentials are validated client-side
// before the request goes out.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return err
	}
	return s.client.Post(ctx, registerPath, req, nil)
}

// Me returns the currently authenticated user. A 401 means anonymous.
func (s *Service) Me(ctx context.Context) (authstate.User, error) {
	var user authstate.User
	if err := s.client.Get(ctx, mePath, &user); err != nil {
		return authstate.User{}, err
	}
	return user, nil
}

// VerifyEmail confirms an address with the emailed token. The token travels
// as a URL parameter to match the backend's API design.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	return s.client.Post(ctx, verifyEmailPath+"?token="+url.QueryEscape(token), nil, nil)
}

// ResendVerification sends a fresh verification email.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return s.client.Post(ctx, resendVerificationPath, map[string]string{"email": email}, nil)
}

// ForgotPassword starts the password reset flow for the given address.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return s.client.Post(ctx, forgotPasswordPath, map[string]string{"email": email}, nil)
}

// ValidateResetToken checks whether a reset token is still usable.
func (s *Service) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := s.client.Get(ctx, resetValidatePath+"?token="+url.QueryEscape(token), &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

// ResetPassword sets a new password using a reset token.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	body := map[string]string{"token": token, "newPassword": newPassword}
	return s.client.Post(ctx, resetPasswordPath, body, nil)
}
