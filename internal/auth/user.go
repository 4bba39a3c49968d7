package auth

import (
	"context"
	"strings"
)

// User is an account allowed to log in
type User struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Disabled       bool   `json:"disabled"`
	HashedPassword string `json:"-"`
}

// UserStore looks users up by username
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// StaticUserStore serves a fixed set of users; it is read-only after construction.
type StaticUserStore struct {
	users map[string]User
}

// NewStaticUserStore indexes users by lower-cased username
func NewStaticUserStore(users ...User) *StaticUserStore {
	s := &StaticUserStore{users: make(map[string]User, len(users))}
	for _, u := range users {
		s.users[strings.ToLower(u.Username)] = u
	}
	return s
}

// FindByUsername returns a copy of the user or ErrUserNotFound
func (s *StaticUserStore) FindByUsername(_ context.Context, username string) (*User, error) {
	u, ok := s.users[strings.ToLower(username)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}
