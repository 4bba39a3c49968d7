package events

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes events to the structured log; used when Redis is not configured
type LogPublisher struct {
	log logrus.FieldLogger
}

func NewLogPublisher(log logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, ev Event) error {
	p.log.WithFields(logrus.Fields{
		"entity": ev.Entity,
		"action": ev.Action,
		"id":     ev.ID,
		"at":     ev.At.UTC().Format(time.RFC3339Nano),
	}).Info("Entity event")
	return nil
}
