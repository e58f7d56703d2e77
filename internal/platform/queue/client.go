package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Client publishes outbound messages to the task queue.
type Client struct {
	client *asynq.Client
	queue  string
}

// NewClient creates a queue client backed by the Redis instance at addr.
func NewClient(addr, password string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password}),
		queue:  QueueDefault,
	}
}

// Publish enqueues a text message for asynchronous delivery.
func (c *Client) Publish(ctx context.Context, text string) error {
	task, err := NewMessageTask(MessagePayload{Text: text})
	if err != nil {
		return fmt.Errorf("failed to build message task: %w", err)
	}
	if _, err := c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue)); err != nil {
		return fmt.Errorf("failed to enqueue message: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (c *Client) Close() error {
	return c.client.Close()
}
