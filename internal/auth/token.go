package auth

import (
	"fmt"  // Error wrapping
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenIssuer signs and verifies HS256 access tokens carrying the username as subject
type TokenIssuer struct {
	secret []byte           // HMAC key
	ttl    time.Duration    // Token lifetime
	now    func() time.Time // Clock, replaceable in tests
}

// NewTokenIssuer creates an issuer whose tokens expire after ttl
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token for username and returns its expiry
func (ti *TokenIssuer) Issue(username string) (string, time.Time, error) {
	now := ti.now()
	exp := now.Add(ti.ttl)
	// Standard claims
	claims := jwt.RegisteredClaims{
		Subject:   username,                // Who the token is for
		IssuedAt:  jwt.NewNumericDate(now), // Issued at current time
		ExpiresAt: jwt.NewNumericDate(exp), // Token expires after ttl
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	signed, err := token.SignedString(ti.secret)               // Sign the token with the secret
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Subject verifies tokenStr and returns its subject claim
func (ti *TokenIssuer) Subject(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	keyFunc := func(*jwt.Token) (any, error) { return ti.secret, nil } // Return the secret key for validation
	_, err := jwt.ParseWithClaims(tokenStr, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), // Reject alg switching
		jwt.WithExpirationRequired(),                                 // Tokens without exp are invalid
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
