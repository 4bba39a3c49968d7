package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Authenticator checks credentials at login and resolves bearer tokens to users
type Authenticator struct {
	users  UserStore
	tokens *TokenIssuer
}

func NewAuthenticator(users UserStore, tokens *TokenIssuer) *Authenticator {
	return &Authenticator{users: users, tokens: tokens}
}

// Login verifies username and password and issues an access token.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := a.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("find user: %w", err)
	}
	if !VerifyPassword(password, u.HashedPassword) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return a.tokens.Issue(u.Username)
}

// Authenticate resolves a bearer token to an active user
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*User, error) {
	username, err := a.tokens.Subject(token)
	if err != nil {
		return nil, err
	}
	u, err := a.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("%w: unknown subject", ErrInvalidToken)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u.Disabled {
		return nil, ErrInactiveUser
	}
	return u, nil
}
