package api

import (
	"net/http"

	"digital_wallet/internal/domain"
	"digital_wallet/internal/events"
	"digital_wallet/internal/repository"
	"digital_wallet/internal/schema"

	"github.com/gin-gonic/gin"
)

func transactionResource(store *repository.Store[domain.Transaction], pub events.Publisher) resource[domain.Transaction, schema.TransactionResponse] {
	return resource[domain.Transaction, schema.TransactionResponse]{
		name:  "transaction",
		title: "Transaction",
		store: store,
		pub:   pub,
		shape: schema.NewTransactionResponse,
		id:    func(t *domain.Transaction) uint { return t.ID },
	}
}

// CreateTransactionHandler records a transaction against a wallet. The wallet balance is not touched.
func CreateTransactionHandler(store *repository.Store[domain.Transaction], pub events.Publisher) gin.HandlerFunc {
	res := transactionResource(store, pub)
	return func(c *gin.Context) {
		var req schema.TransactionCreate
		if !bindJSON(c, &req) {
			return
		}
		res.create(c, req.Model())
	}
}

func GetTransactionHandler(store *repository.Store[domain.Transaction]) gin.HandlerFunc {
	return transactionResource(store, nil).get
}

func UpdateTransactionHandler(store *repository.Store[domain.Transaction], pub events.Publisher) gin.HandlerFunc {
	res := transactionResource(store, pub)
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req schema.TransactionUpdate
		if !bindJSON(c, &req) {
			return
		}
		res.update(c, id, req)
	}
}

func DeleteTransactionHandler(store *repository.Store[domain.Transaction], pub events.Publisher) gin.HandlerFunc {
	return transactionResource(store, pub).delete
}

// GetTransactionItemsHandler lists the items of a transaction; an empty list is a normal answer
func GetTransactionItemsHandler(txs *repository.Store[domain.Transaction], items *repository.Store[domain.Item]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if _, err := txs.Get(c.Request.Context(), id); err != nil {
			respondError(c, "Transaction", err)
			return
		}
		list, err := items.ListBy(c.Request.Context(), "transaction_id", id)
		if err != nil {
			respondError(c, "Items", err)
			return
		}
		c.JSON(http.StatusOK, schema.NewItemResponses(list))
	}
}
