// Package queue provides the asynq task definitions and client used for
// outbound message publishing.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background tasks.
	QueueDefault = "default"
	// TaskTypeMessageSend is the task type for outbound text messages.
	TaskTypeMessageSend = "message:send"
)

// MessagePayload describes an outbound text message.
type MessagePayload struct {
	Text string `json:"text"`
}

// NewMessageTask constructs an asynq task carrying a text message.
func NewMessageTask(payload MessagePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeMessageSend, data), nil
}

// HandleMessageTask processes TaskTypeMessageSend tasks on the worker side.
func HandleMessageTask(ctx context.Context, t *asynq.Task) error {
	var payload MessagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	slog.Info("message delivered", "text", payload.Text)
	return nil
}
