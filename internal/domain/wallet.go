package domain

// Wallet Model
type Wallet struct {
	ID           uint          `gorm:"primaryKey"`                   // Primary key
	OwnerName    string        `gorm:"size:255;not null"`            // Name of the wallet owner
	Balance      float64       `gorm:"not null;default:0"`           // Stored balance, never recalculated
	Transactions []Transaction `gorm:"foreignKey:WalletID" json:"-"` // One-to-many relationship with Transaction
}
