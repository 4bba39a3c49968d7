package domain

// Item Model, a line item bought from a Merchant within a Transaction
type Item struct {
	ID            uint    `gorm:"primaryKey"`        // Primary key
	Name          string  `gorm:"size:255;not null"` // Item name
	Price         float64 `gorm:"not null"`          // Unit price
	Description   *string `gorm:"size:1024"`         // Optional description
	TransactionID uint    `gorm:"not null;index"`    // Foreign key to Transaction
	MerchantID    uint    `gorm:"not null;index"`    // Foreign key to Merchant
}
