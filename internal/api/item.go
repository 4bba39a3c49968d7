package api

import (
	"digital_wallet/internal/domain"
	"digital_wallet/internal/events"
	"digital_wallet/internal/repository"
	"digital_wallet/internal/schema"

	"github.com/gin-gonic/gin"
)

func itemResource(store *repository.Store[domain.Item], pub events.Publisher) resource[domain.Item, schema.ItemResponse] {
	return resource[domain.Item, schema.ItemResponse]{
		name:  "item",
		title: "Item",
		store: store,
		pub:   pub,
		shape: schema.NewItemResponse,
		id:    func(i *domain.Item) uint { return i.ID },
	}
}

// CreateItemHandler adds an item; unknown transaction or merchant ids are rejected by the foreign keys
func CreateItemHandler(store *repository.Store[domain.Item], pub events.Publisher) gin.HandlerFunc {
	res := itemResource(store, pub)
	return func(c *gin.Context) {
		var req schema.ItemCreate
		if !bindJSON(c, &req) {
			return
		}
		res.create(c, req.Model())
	}
}

func GetItemHandler(store *repository.Store[domain.Item]) gin.HandlerFunc {
	return itemResource(store, nil).get
}

func UpdateItemHandler(store *repository.Store[domain.Item], pub events.Publisher) gin.HandlerFunc {
	res := itemResource(store, pub)
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req schema.ItemUpdate
		if !bindJSON(c, &req) {
			return
		}
		res.update(c, id, req)
	}
}

func DeleteItemHandler(store *repository.Store[domain.Item], pub events.Publisher) gin.HandlerFunc {
	return itemResource(store, pub).delete
}
