package domain

// Merchant Model
type Merchant struct {
	ID          uint    `gorm:"primaryKey"`                      // Primary key
	Name        string  `gorm:"size:255;not null"`               // Merchant name
	Description *string `gorm:"size:1024"`                       // Optional description
	Items       []Item  `gorm:"foreignKey:MerchantID" json:"-"` // One-to-many relationship with Item
}
