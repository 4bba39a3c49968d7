package api

import (
	"net/http"

	"digital_wallet/internal/domain"
	"digital_wallet/internal/events"
	"digital_wallet/internal/repository"
	"digital_wallet/internal/schema"

	"github.com/gin-gonic/gin"
)

func merchantResource(store *repository.Store[domain.Merchant], pub events.Publisher) resource[domain.Merchant, schema.MerchantResponse] {
	return resource[domain.Merchant, schema.MerchantResponse]{
		name:  "merchant",
		title: "Merchant",
		store: store,
		pub:   pub,
		shape: schema.NewMerchantResponse,
		id:    func(m *domain.Merchant) uint { return m.ID },
	}
}

func CreateMerchantHandler(store *repository.Store[domain.Merchant], pub events.Publisher) gin.HandlerFunc {
	res := merchantResource(store, pub)
	return func(c *gin.Context) {
		var req schema.MerchantCreate
		if !bindJSON(c, &req) {
			return
		}
		res.create(c, req.Model())
	}
}

func GetMerchantHandler(store *repository.Store[domain.Merchant]) gin.HandlerFunc {
	return merchantResource(store, nil).get
}

func UpdateMerchantHandler(store *repository.Store[domain.Merchant], pub events.Publisher) gin.HandlerFunc {
	res := merchantResource(store, pub)
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req schema.MerchantUpdate
		if !bindJSON(c, &req) {
			return
		}
		res.update(c, id, req)
	}
}

func DeleteMerchantHandler(store *repository.Store[domain.Merchant], pub events.Publisher) gin.HandlerFunc {
	return merchantResource(store, pub).delete
}

// GetMerchantItemsHandler lists every item sold by a merchant
func GetMerchantItemsHandler(merchants *repository.Store[domain.Merchant], items *repository.Store[domain.Item]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if _, err := merchants.Get(c.Request.Context(), id); err != nil {
			respondError(c, "Merchant", err)
			return
		}
		list, err := items.ListBy(c.Request.Context(), "merchant_id", id)
		if err != nil {
			respondError(c, "Items", err)
			return
		}
		c.JSON(http.StatusOK, schema.NewItemResponses(list))
	}
}
