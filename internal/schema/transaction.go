package schema

import "digital_wallet/internal/domain"

// TransactionCreate is the body of POST /transactions.
// Type is not restricted to deposit/withdraw.
type TransactionCreate struct {
	WalletID    uint     `json:"wallet_id" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Description *string  `json:"description"`
}

// Model converts the request into a storable transaction
func (r TransactionCreate) Model() *domain.Transaction {
	return &domain.Transaction{
		WalletID:    r.WalletID,
		Amount:      *r.Amount,
		Type:        r.Type,
		Description: r.Description,
	}
}

// TransactionUpdate is the body of PUT /transactions/{id}. The owning wallet cannot be changed.
type TransactionUpdate struct {
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
}

// Changes returns the columns present in the request
func (r TransactionUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if r.Amount != nil {
		changes["amount"] = *r.Amount
	}
	if r.Type != nil {
		changes["type"] = *r.Type
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}

type TransactionResponse struct {
	ID          uint    `json:"id"`
	WalletID    uint    `json:"wallet_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}

func NewTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
	}
}

// NewTransactionResponses shapes a list, never returning nil
func NewTransactionResponses(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = NewTransactionResponse(&txs[i])
	}
	return out
}
