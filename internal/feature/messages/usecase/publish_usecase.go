// Package usecase implements the business logic for the messages feature.
package usecase

import "context"

// Publisher abstracts the outbound message queue.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (platform/queue).
type Publisher interface {
	// Publish enqueues a text message for asynchronous delivery.
	Publish(ctx context.Context, text string) error
}

// messageUsecase implements the message-publish operation.
type messageUsecase struct {
	publisher Publisher
}

// NewMessageUsecase creates a new instance of messageUsecase.
func NewMessageUsecase(publisher Publisher) *messageUsecase {
	return &messageUsecase{publisher: publisher}
}

// Publish hands the message to the queue. Delivery is best-effort and
// asynchronous; a nil return means the message was accepted, not delivered.
func (u *messageUsecase) Publish(ctx context.Context, text string) error {
	return u.publisher.Publish(ctx, text)
}
