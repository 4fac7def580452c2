package handlers

import (
	"net/http"

	apperror "chat-agent-service/internal/error"
	"chat-agent-service/internal/service"

	"go.uber.org/zap"
)

func (h *Handler) handleWebSocketChat(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var req service.ChatRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.logger.Error("Failed to read WebSocket message", zap.Error(err))

		errorResponse := apperror.NewErrorResponse(
			apperror.NewValidationError("Failed to read WebSocket message: invalid JSON", err),
		)

		_ = conn.WriteJSON(errorResponse)
		return
	}

	_, err = h.chatService.ProcessChatStream(r.Context(), &req, func(token string) error {
		message := map[string]string{"token": token}
		return conn.WriteJSON(message)
	})

	if err != nil {
		h.logger.Error("WebSocket streaming failed", zap.Error(err))
		errorResponse := apperror.NewErrorResponse(err)
		_ = conn.WriteJSON(errorResponse)
		return
	}

	if err = conn.WriteJSON(map[string]string{"done": "true"}); err != nil {
		h.logger.Error("Failed to write done message", zap.Error(err))
		return
	}
}
