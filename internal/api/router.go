package api

import (
	"net/http" // HTTP status codes

	"digital_wallet/internal/auth"       // Authenticator for the bearer gate
	"digital_wallet/internal/events"     // Entity change events
	"digital_wallet/internal/metrics"    // Prometheus collectors
	"digital_wallet/internal/middleware" // Custom package for middleware
	"digital_wallet/internal/repository" // Entity stores
	"digital_wallet/internal/schema"     // Validator setup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/go-chi/cors"     // CORS handling
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Deps are the collaborators the HTTP layer needs
type Deps struct {
	Repos     repository.Repositories // Entity stores
	Auth      *auth.Authenticator     // Login and token checks
	Publisher events.Publisher        // Change event sink
	Log       logrus.FieldLogger      // Request log
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) (*gin.Engine, error) {
	schema.RegisterValidation()
	metrics.Init()

	r := gin.New()
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}
	r.Use(middleware.RequestID(), middleware.Logger(d.Log), gin.Recovery(), middleware.Metrics())

	// Ops routes (open)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Auth routes
	r.POST("/token", LoginHandler(d.Auth)) // Login endpoint

	// Everything else requires a bearer token
	protected := r.Group("")
	protected.Use(middleware.JWTAuthMiddleware(d.Auth))
	protected.GET("/users/me", MeHandler())

	wallets, txs, merchants, items := d.Repos.Wallets, d.Repos.Transactions, d.Repos.Merchants, d.Repos.Items

	protected.POST("/wallets", CreateWalletHandler(wallets, d.Publisher))
	protected.GET("/wallets/:id", GetWalletHandler(wallets))
	protected.PUT("/wallets/:id", UpdateWalletHandler(wallets, d.Publisher))
	protected.DELETE("/wallets/:id", DeleteWalletHandler(wallets, d.Publisher))
	protected.GET("/wallets/:id/transactions", GetWalletTransactionsHandler(wallets, txs))

	protected.POST("/transactions", CreateTransactionHandler(txs, d.Publisher))
	protected.GET("/transactions/:id", GetTransactionHandler(txs))
	protected.PUT("/transactions/:id", UpdateTransactionHandler(txs, d.Publisher))
	protected.DELETE("/transactions/:id", DeleteTransactionHandler(txs, d.Publisher))
	protected.GET("/transactions/:id/items", GetTransactionItemsHandler(txs, items))

	protected.POST("/merchants", CreateMerchantHandler(merchants, d.Publisher))
	protected.GET("/merchants/:id", GetMerchantHandler(merchants))
	protected.PUT("/merchants/:id", UpdateMerchantHandler(merchants, d.Publisher))
	protected.DELETE("/merchants/:id", DeleteMerchantHandler(merchants, d.Publisher))
	protected.GET("/merchants/:id/items", GetMerchantItemsHandler(merchants, items))

	protected.POST("/items", CreateItemHandler(items, d.Publisher))
	protected.GET("/items/:id", GetItemHandler(items))
	protected.PUT("/items/:id", UpdateItemHandler(items, d.Publisher))
	protected.DELETE("/items/:id", DeleteItemHandler(items, d.Publisher))

	return r, nil
}

// WithCORS wraps the router so browsers from origins may call it
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(h)
}
