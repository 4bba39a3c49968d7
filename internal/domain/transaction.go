package domain

// Transaction Model
type Transaction struct {
	ID          uint    `gorm:"primaryKey"`                         // Primary key
	WalletID    uint    `gorm:"not null;index"`                     // Foreign key to Wallet
	Amount      float64 `gorm:"not null"`                           // Amount of the transaction
	Type        string  `gorm:"size:64;not null"`                   // Free-form type, usually deposit or withdraw
	Description *string `gorm:"size:1024"`                          // Optional description
	Items       []Item  `gorm:"foreignKey:TransactionID" json:"-"` // One-to-many relationship with Item
}
