// Package pubsub provides a generic publish/subscribe event system.
package pubsub

import (
	"context"
	"time"
)

// EventType identifies what happened.
type EventType string

const (
	LoggedEvent    EventType = "logged"
	IssuedEvent    EventType = "issued"
	CommittedEvent EventType = "committed"
	FailedEvent    EventType = "failed"
	DiscardedEvent EventType = "discarded"
	ReportedEvent  EventType = "reported"
	CopiedEvent    EventType = "copied"
	PastedEvent    EventType = "pasted"
	ReloadedEvent  EventType = "reloaded"
	ChangedEvent   EventType = "changed"
	ErrorEvent     EventType = "error"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes typed payloads.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
