package authapi

import "github.com/arenahub/clientkit/core/authstate"

// LoginRequest carries the sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the sign-in result. AccessToken may be empty when the
// backend keeps the whole session in cookies.
type LoginResponse struct {
	User        authstate.User `json:"user"`
	AccessToken string         `json:"accessToken,omitempty"`
}

// RegisterRequest carries a new account's details.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
