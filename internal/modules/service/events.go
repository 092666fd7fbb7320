package service

import "context"

const (
	EventContactSubmitted     = "contact.submitted"
	EventApplicationSubmitted = "application.submitted"
)

// EventPublisher is satisfied by *queue.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, name string, payload interface{}) error
}
