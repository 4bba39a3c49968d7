package schema

import "digital_wallet/internal/domain"

type MerchantCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (r MerchantCreate) Model() *domain.Merchant {
	return &domain.Merchant{Name: r.Name, Description: r.Description}
}

type MerchantUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r MerchantUpdate) Changes() map[string]any {
	changes := map[string]any{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}

type MerchantResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func NewMerchantResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}
