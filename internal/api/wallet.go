package api

import (
	"net/http" // HTTP status codes

	"digital_wallet/internal/domain"     // Importing domain models
	"digital_wallet/internal/events"     // Entity change events
	"digital_wallet/internal/repository" // Generic entity store
	"digital_wallet/internal/schema"     // Request and response shapes

	"github.com/gin-gonic/gin" // Gin web framework
)

func walletResource(store *repository.Store[domain.Wallet], pub events.Publisher) resource[domain.Wallet, schema.WalletResponse] {
	return resource[domain.Wallet, schema.WalletResponse]{
		name:  "wallet",
		title: "Wallet",
		store: store,
		pub:   pub,
		shape: schema.NewWalletResponse,
		id:    func(w *domain.Wallet) uint { return w.ID },
	}
}

// CreateWalletHandler creates a wallet; the opening balance must be positive
func CreateWalletHandler(store *repository.Store[domain.Wallet], pub events.Publisher) gin.HandlerFunc {
	res := walletResource(store, pub)
	return func(c *gin.Context) {
		var req schema.WalletCreate // Bind JSON request to struct
		if !bindJSON(c, &req) {
			return
		}
		res.create(c, req.Model())
	}
}

// GetWalletHandler returns one wallet
func GetWalletHandler(store *repository.Store[domain.Wallet]) gin.HandlerFunc {
	return walletResource(store, nil).get
}

// UpdateWalletHandler applies the fields present in the body
func UpdateWalletHandler(store *repository.Store[domain.Wallet], pub events.Publisher) gin.HandlerFunc {
	res := walletResource(store, pub)
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req schema.WalletUpdate
		if !bindJSON(c, &req) {
			return
		}
		res.update(c, id, req)
	}
}

// DeleteWalletHandler removes a wallet
func DeleteWalletHandler(store *repository.Store[domain.Wallet], pub events.Publisher) gin.HandlerFunc {
	return walletResource(store, pub).delete
}

// GetWalletTransactionsHandler lists a wallet's transactions.
// An existing wallet with no transactions also answers 404 ("Transactions not found").
func GetWalletTransactionsHandler(wallets *repository.Store[domain.Wallet], txs *repository.Store[domain.Transaction]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		// Distinguish a missing wallet from an empty history
		if _, err := wallets.Get(c.Request.Context(), id); err != nil {
			respondError(c, "Wallet", err)
			return
		}
		list, err := txs.ListBy(c.Request.Context(), "wallet_id", id)
		if err != nil {
			respondError(c, "Transactions", err)
			return
		}
		if len(list) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transactions not found"})
			return
		}
		c.JSON(http.StatusOK, schema.NewTransactionResponses(list))
	}
}
