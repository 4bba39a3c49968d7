package events

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding of payloads
	"fmt"           // Error wrapping
	"time"          // Timestamp formatting

	"github.com/redis/go-redis/v9" // Redis client
)

// DefaultMaxLen caps the stream length (approximate trimming)
const DefaultMaxLen = 10000

// RedisPublisher appends events to a Redis stream
type RedisPublisher struct {
	rdb    *redis.Client // Redis client
	stream string        // Stream key
	maxLen int64         // Approximate stream cap
}

// NewRedisPublisher creates a publisher writing to stream
func NewRedisPublisher(rdb *redis.Client, stream string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, stream: stream, maxLen: DefaultMaxLen}
}

// Publish adds one stream entry per event
func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev.Payload) // Marshal payload to JSON
	if err != nil {
		return fmt.Errorf("encode %s event: %w", ev.Entity, err)
	}
	err = p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"entity":  ev.Entity,
			"action":  ev.Action,
			"id":      ev.ID,
			"at":      ev.At.UTC().Format(time.RFC3339Nano),
			"payload": string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}
