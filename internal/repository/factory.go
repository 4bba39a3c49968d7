package repository

import (
	"digital_wallet/internal/domain"

	"gorm.io/gorm"
)

// Repositories groups the per-entity stores
type Repositories struct {
	Wallets      *Store[domain.Wallet]
	Transactions *Store[domain.Transaction]
	Merchants    *Store[domain.Merchant]
	Items        *Store[domain.Item]
}

// NewRepositories builds a store for every entity on the same connection pool
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Wallets:      NewStore[domain.Wallet](db),
		Transactions: NewStore[domain.Transaction](db),
		Merchants:    NewStore[domain.Merchant](db),
		Items:        NewStore[domain.Item](db),
	}
}
