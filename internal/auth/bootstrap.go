package auth

import (
	"fmt"

	"digital_wallet/internal/config"
)

// ConfiguredUser builds the single login record from configuration.
// A plaintext AUTH_PASSWORD is hashed here so only the hash stays in memory.
func ConfiguredUser(cfg *config.Config) (User, error) {
	hash := cfg.AuthPasswordHash
	if hash == "" {
		h, err := HashPassword(cfg.AuthPassword)
		if err != nil {
			return User{}, fmt.Errorf("hash configured password: %w", err)
		}
		hash = h
	}
	return User{
		Username:       cfg.AuthUsername,
		FullName:       cfg.AuthFullName,
		Email:          cfg.AuthEmail,
		HashedPassword: hash,
	}, nil
}
