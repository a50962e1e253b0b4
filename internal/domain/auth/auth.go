package auth

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrAccountDisabled    = errors.New("Account is disabled")
	ErrUnknownAccount     = errors.New("No employee account for this identity")
)

// LoginRequest is a local password login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is the issued session.
type TokenPair struct {
	AccessToken      string `json:"access_token"`
	AccessExpiresAt  int64  `json:"access_expires_at"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresAt int64  `json:"refresh_expires_at"`
}

// Service issues and refreshes JWT sessions for employee accounts.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)
	// LoginWithGoogle maps a verified Google email to an employee account.
	LoginWithGoogle(ctx context.Context, code string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, refreshToken string)
}
