package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisherAppendsToStream(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	pub := NewRedisPublisher(rdb, "test:events")
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, pub.Publish(ctx, Event{Entity: "wallet", Action: ActionCreated, ID: 7, At: at, Payload: map[string]any{"owner_name": "alice"}}))
	require.NoError(t, pub.Publish(ctx, Event{Entity: "wallet", Action: ActionDeleted, ID: 7, At: at}))

	entries, err := rdb.XRange(ctx, "test:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0].Values
	assert.Equal(t, "wallet", first["entity"])
	assert.Equal(t, ActionCreated, first["action"])
	assert.Equal(t, "7", first["id"])
	assert.Equal(t, "2026-03-01T12:00:00Z", first["at"])

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(first["payload"].(string)), &payload))
	assert.Equal(t, "alice", payload["owner_name"])

	assert.Equal(t, "null", entries[1].Values["payload"])
}

func TestRedisPublisherReportsFailures(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1, DialTimeout: time.Second})
	t.Cleanup(func() { _ = rdb.Close() })

	err = NewRedisPublisher(rdb, "test:events").Publish(context.Background(), Event{Entity: "item", Action: ActionUpdated, ID: 1})
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	log, hook := test.NewNullLogger()
	pub := NewLogPublisher(log)

	require.NoError(t, pub.Publish(context.Background(), Event{Entity: "merchant", Action: ActionCreated, ID: 3, At: time.Now()}))
	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "merchant", entry.Data["entity"])
	assert.Equal(t, uint(3), entry.Data["id"])
}
