package api

import (
	"net/http" // HTTP status codes
	"time"     // Event timestamps

	"digital_wallet/internal/events"     // Entity change events
	"digital_wallet/internal/metrics"    // Mutation counters
	"digital_wallet/internal/middleware" // Request ids for log lines
	"digital_wallet/internal/repository" // Generic entity store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// resource wires one entity store to HTTP: M is the stored model, R its response shape
type resource[M any, R any] struct {
	name  string               // Event and metric label, e.g. "wallet"
	title string               // Message prefix, e.g. "Wallet"
	store *repository.Store[M] // Backing store
	pub   events.Publisher     // Change event sink
	shape func(*M) R           // Storage model to response
	id    func(*M) uint        // Primary key accessor
}

func (r resource[M, R]) create(c *gin.Context, rec *M) {
	if err := r.store.Create(c.Request.Context(), rec); err != nil {
		respondError(c, r.title, err)
		return
	}
	resp := r.shape(rec)
	r.emit(c, events.ActionCreated, r.id(rec), resp)
	c.JSON(http.StatusCreated, resp)
}

func (r resource[M, R]) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := r.store.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, r.title, err)
		return
	}
	c.JSON(http.StatusOK, r.shape(rec))
}

func (r resource[M, R]) update(c *gin.Context, id uint, patch repository.Patch) {
	rec, err := r.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, r.title, err)
		return
	}
	resp := r.shape(rec)
	r.emit(c, events.ActionUpdated, id, resp)
	c.JSON(http.StatusOK, resp)
}

func (r resource[M, R]) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := r.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, r.title, err)
		return
	}
	r.emit(c, events.ActionDeleted, id, nil)
	c.JSON(http.StatusOK, gin.H{"message": r.title + " deleted successfully"})
}

// emit counts the mutation and publishes its event; delivery failures are logged only
func (r resource[M, R]) emit(c *gin.Context, action string, id uint, payload any) {
	metrics.EntityMutations.WithLabelValues(r.name, action).Inc()
	ev := events.Event{Entity: r.name, Action: action, ID: id, At: time.Now(), Payload: payload}
	if err := r.pub.Publish(c.Request.Context(), ev); err != nil {
		metrics.EventPublishFailures.Inc()
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFrom(c),
			"entity":     r.name,
			"action":     action,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Event publish failed")
	}
}
