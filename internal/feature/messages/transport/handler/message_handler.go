// Package handler provides the HTTP handlers for the messages feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamacy_backend/internal/api"
	"teamacy_backend/internal/feature/messages/domain/entity"
	"teamacy_backend/internal/feature/messages/transport/http/dto"
	"teamacy_backend/internal/feature/messages/usecase"
)

// MessageUsecase defines the usecase for message intake and listing.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MessageUsecase interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*entity.Message, error)
	List(ctx context.Context, msgType string) ([]entity.Message, error)
}

// MessageHandler handles HTTP requests for message operations.
type MessageHandler struct {
	messages MessageUsecase
}

// NewMessageHandler creates a new instance of MessageHandler.
func NewMessageHandler(messages MessageUsecase) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Submit handles the public message submission endpoint.
// - Binds the request JSON to SubmitMessageReq, 400 on validation failure.
// - 201 with the created record on success.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req dto.SubmitMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("message validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.messages.Submit(c.Request.Context(), usecase.SubmitInput{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMessageType) || errors.Is(err, usecase.ErrMissingField) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("message submission failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to submit message"})
		return
	}

	slog.Info("message submitted", "message_id", m.ID, "type", m.Type)
	c.JSON(http.StatusCreated, dto.FromEntity(m))
}

// List handles the admin inbox endpoint. The route is registered behind
// AuthRequired and AdminRequired, so only valid admin tokens reach it.
// An optional ?type=enquiry|feedback query filters at the store level.
func (h *MessageHandler) List(c *gin.Context) {
	msgType := c.Query("type")

	messages, err := h.messages.List(c.Request.Context(), msgType)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTypeFilter) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("message listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list messages"})
		return
	}

	out := make([]dto.MessageItem, 0, len(messages))
	for i := range messages {
		out = append(out, dto.FromEntity(&messages[i]))
	}
	c.JSON(http.StatusOK, out)
}
