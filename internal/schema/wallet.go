package schema

import "digital_wallet/internal/domain"

// WalletCreate is the body of POST /wallets
type WalletCreate struct {
	OwnerName string   `json:"owner_name" binding:"required"`   // Owner must be provided
	Balance   *float64 `json:"balance" binding:"required,gt=0"` // Opening balance must be positive
}

// Model converts the request into a storable wallet
func (r WalletCreate) Model() *domain.Wallet {
	return &domain.Wallet{OwnerName: r.OwnerName, Balance: *r.Balance}
}

// WalletUpdate is the body of PUT /wallets/{id}; absent fields keep their value
type WalletUpdate struct {
	OwnerName *string  `json:"owner_name"`
	Balance   *float64 `json:"balance" binding:"omitempty,gt=0"`
}

// Changes returns the columns present in the request
func (r WalletUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if r.OwnerName != nil {
		changes["owner_name"] = *r.OwnerName
	}
	if r.Balance != nil {
		changes["balance"] = *r.Balance
	}
	return changes
}

// WalletResponse is the externally visible wallet
type WalletResponse struct {
	ID        uint    `json:"id"`
	OwnerName string  `json:"owner_name"`
	Balance   float64 `json:"balance"`
}

// NewWalletResponse shapes a stored wallet for output
func NewWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{ID: w.ID, OwnerName: w.OwnerName, Balance: w.Balance}
}
