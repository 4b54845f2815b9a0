package authapi

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmailRequired is returned when the email field is empty.
	ErrEmailRequired = errors.New("email is required")
	// ErrInvalidEmail is returned when the email does not look like an address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordRequired is returned when the password field is empty.
	ErrPasswordRequired = errors.New("password is required")
	// ErrWeakPassword is returned when a new password fails the policy.
	ErrWeakPassword = errors.New("password does not meet the policy")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Password policy, matching the backend's requirements.
const (
	minPasswordLen = 12
	maxPasswordLen = 128
)

const passwordSpecials = "@$!%*?&#^()_+-=[]{};':\"\\|,.<>/`~"

// ValidateEmail checks that email is present and address-shaped.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the account password policy: 12 to 128
// characters with at least one lowercase letter, one uppercase letter, one
// digit and one special character.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: at least %d characters required", ErrWeakPassword, minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("%w: at most %d characters allowed", ErrWeakPassword, maxPasswordLen)
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return fmt.Errorf("%w: a lowercase letter is required", ErrWeakPassword)
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return fmt.Errorf("%w: an uppercase letter is required", ErrWeakPassword)
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return fmt.Errorf("%w: a digit is required", ErrWeakPassword)
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return fmt.Errorf("%w: a special character is required", ErrWeakPassword)
	}
	return nil
}
