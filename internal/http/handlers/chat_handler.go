// Chat HTTP handler.
//
// This file exposes the single conversational endpoint:
//   - POST /chat
//
// The handler validates the payload and delegates routing (greeting, thanks,
// nearby, budget, cultural, general) entirely to the chat service.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/ai"
	"github.com/voyago/travel-assistant/internal/services"
)

// ChatRequest is the JSON payload for one chat turn. Language is an optional
// lowercase tag ("es", "fr", ...); empty means English.
type ChatRequest struct {
	Message  string `json:"message" binding:"required" example:"I want to visit Paris"`
	Language string `json:"language" example:"en"`
}

// Chat godoc
// @ID          chat
// @Summary     Send a chat message
// @Description Routes the message by intent and returns the assistant reply, plus any extracted location and category.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ChatRequest  true  "Chat payload"
//
// @Success     200  {object}  services.ChatResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty or oversized message"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "AI provider failed"
// @Failure     503  {object}  handlers.ErrorResponse  "AI provider not configured"
// @Router      /chat [post]
func (h *Handlers) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message is required")
		return
	}

	resp, err := h.chatSvc.Chat(c.Request.Context(), userID(c), req.Message, strings.TrimSpace(req.Language))
	switch {
	case err == nil:
		ok(c, http.StatusOK, resp)
	case errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrMessageTooLong):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, ai.ErrNotConfigured):
		fail(c, http.StatusServiceUnavailable, ErrCodeConfiguration, "AI provider is not configured")
	default:
		fail(c, http.StatusBadGateway, ErrCodeChatFailed, "failed to process message")
	}
}
