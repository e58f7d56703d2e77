// Package handler provides HTTP handlers for the messages feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/messages/transport/http/dto"
)

// MessageUsecase defines the message-publish operation consumed by the
// HTTP layer.
type MessageUsecase interface {
	// Publish enqueues a text message for asynchronous delivery.
	Publish(ctx context.Context, text string) error
}

// MessageHandler handles HTTP requests for message publishing.
type MessageHandler struct {
	messages MessageUsecase
}

// NewMessageHandler creates a new instance of MessageHandler.
func NewMessageHandler(messages MessageUsecase) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Publish handles POST /messages.
// Returns 202 once the message is accepted by the queue; delivery happens
// asynchronously in the worker.
func (h *MessageHandler) Publish(c *gin.Context) {
	var req dto.MessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("publish validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.messages.Publish(c.Request.Context(), req.Text); err != nil {
		slog.Error("publish failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "ok"})
}
