package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"digital_wallet/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestAuthenticator(t *testing.T, users ...User) (*Authenticator, *TokenIssuer) {
	t.Helper()
	issuer := NewTokenIssuer(testSecret, time.Hour)
	return NewAuthenticator(NewStaticUserStore(users...), issuer), issuer
}

func mustHash(t *testing.T, p string) string {
	t.Helper()
	h, err := HashPassword(p)
	require.NoError(t, err)
	return h
}

func TestPasswordHashing(t *testing.T) {
	h := mustHash(t, "secret")
	assert.NotEqual(t, "secret", h)
	assert.True(t, VerifyPassword("secret", h))
	assert.False(t, VerifyPassword("Secret", h))

	// salted: same input, different hashes
	assert.NotEqual(t, h, mustHash(t, "secret"))
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 30*time.Minute)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	issuer.now = func() time.Time { return fixed }

	tok, exp, err := issuer.Issue("johndoe")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(30*time.Minute), exp)

	sub, err := issuer.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", sub)
}

func TestTokenExpires(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Minute)
	start := time.Now()
	issuer.now = func() time.Time { return start }
	tok, _, err := issuer.Issue("johndoe")
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = issuer.Subject(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	other := NewTokenIssuer("another-secret", time.Hour)
	foreign, _, err := other.Issue("johndoe")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "johndoe"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "johndoe",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"no expiry":    noExp,
		"no subject":   noSub,
		"alg none":     unsigned,
		"truncated":    foreign[:len(foreign)-4],
		"empty":        "",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Subject(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestLogin(t *testing.T) {
	a, issuer := newTestAuthenticator(t, User{Username: "johndoe", HashedPassword: mustHash(t, "secret")})
	ctx := context.Background()

	tok, _, err := a.Login(ctx, "johndoe", "secret")
	require.NoError(t, err)
	sub, err := issuer.Subject(tok)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", sub)

	_, _, err = a.Login(ctx, "johndoe", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = a.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate(t *testing.T) {
	a, issuer := newTestAuthenticator(t,
		User{Username: "johndoe", FullName: "John Doe", HashedPassword: mustHash(t, "secret")},
		User{Username: "alice", Disabled: true, HashedPassword: mustHash(t, "secret")},
	)
	ctx := context.Background()

	tok, _, err := a.Login(ctx, "johndoe", "secret")
	require.NoError(t, err)
	u, err := a.Authenticate(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.FullName)

	ghost, _, err := issuer.Issue("ghost")
	require.NoError(t, err)
	_, err = a.Authenticate(ctx, ghost)
	assert.ErrorIs(t, err, ErrInvalidToken)

	disabled, _, err := issuer.Issue("alice")
	require.NoError(t, err)
	_, err = a.Authenticate(ctx, disabled)
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestStaticUserStoreIsCaseInsensitive(t *testing.T) {
	s := NewStaticUserStore(User{Username: "JohnDoe"})
	u, err := s.FindByUsername(context.Background(), strings.ToLower("JOHNDOE"))
	require.NoError(t, err)
	assert.Equal(t, "JohnDoe", u.Username)
}

func TestConfiguredUser(t *testing.T) {
	u, err := ConfiguredUser(&config.Config{AuthUsername: "johndoe", AuthPassword: "secret"})
	require.NoError(t, err)
	assert.True(t, VerifyPassword("secret", u.HashedPassword))

	hash := mustHash(t, "other")
	u, err = ConfiguredUser(&config.Config{AuthUsername: "johndoe", AuthPasswordHash: hash, AuthPassword: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, hash, u.HashedPassword)
}
