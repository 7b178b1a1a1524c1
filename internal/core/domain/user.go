package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserExists              = errors.New("user already exists")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidVerificationCode = errors.New("invalid or expired verification code")
)

// User models a registered identity. Financial records never reference a
// user directly; they reference the membership binding the user to an
// organization.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Verified     bool      `json:"verified"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// VerificationCode is a short-lived one-time code proving ownership of an
// email address. Confirming one flips the user's Verified flag.
type VerificationCode struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
	Used      bool      `json:"used"`
}
