package schema

import "digital_wallet/internal/domain"

// ItemCreate is the body of POST /items; both parents must already exist
type ItemCreate struct {
	Name          string   `json:"name" binding:"required"`
	Price         *float64 `json:"price" binding:"required"`
	Description   *string  `json:"description"`
	TransactionID uint     `json:"transaction_id" binding:"required"`
	MerchantID    uint     `json:"merchant_id" binding:"required"`
}

func (r ItemCreate) Model() *domain.Item {
	return &domain.Item{
		Name:          r.Name,
		Price:         *r.Price,
		Description:   r.Description,
		TransactionID: r.TransactionID,
		MerchantID:    r.MerchantID,
	}
}

// ItemUpdate only touches the item's own fields, not its parents
type ItemUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

func (r ItemUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Price != nil {
		changes["price"] = *r.Price
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}

type ItemResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Description   *string `json:"description"`
	TransactionID uint    `json:"transaction_id"`
	MerchantID    uint    `json:"merchant_id"`
}

func NewItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Name:          i.Name,
		Price:         i.Price,
		Description:   i.Description,
		TransactionID: i.TransactionID,
		MerchantID:    i.MerchantID,
	}
}

func NewItemResponses(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = NewItemResponse(&items[i])
	}
	return out
}
