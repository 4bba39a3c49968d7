package events

import (
	"context" // Context for Redis operations
	"time"    // Event timestamps
)

// Actions recorded for every committed mutation
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one committed change to an entity
type Event struct {
	Entity  string    `json:"entity"`            // wallet, transaction, merchant or item
	Action  string    `json:"action"`            // created, updated or deleted
	ID      uint      `json:"id"`                // Entity id
	At      time.Time `json:"at"`                // When the change was committed
	Payload any       `json:"payload,omitempty"` // Response shape after the change, nil on delete
}

// Publisher delivers change events. Delivery is best-effort: callers log failures and move on.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}
