package handlers

import (
	"encoding/json"
	"net/http"

	apperror "chat-agent-service/internal/error"
	"chat-agent-service/internal/service"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	chatService   service.ChatService
	searchService service.SearchService
	logger        *zap.Logger
	upgrader      websocket.Upgrader
}

// ------------------------------------------------------------------------------------------------------
func NewHandler(chatService service.ChatService, searchService service.SearchService, logger *zap.Logger) *Handler {
	return &Handler{
		chatService:   chatService,
		searchService: searchService,
		logger:        logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ------------------------------------------------------------------------------------------------------
// ChatHandler picks the response mode from the request: WebSocket
// upgrade, SSE stream, or plain JSON
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {

	if websocket.IsWebSocketUpgrade(r) {
		h.handleWebSocketChat(w, r)
		return
	}

	accept := r.Header.Get("Accept")

	if accept == "text/event-stream" || r.URL.Query().Get("stream") == "true" {
		h.handleSSEChat(w, r)
		return
	}

	h.handleJSONChat(w, r)
}

// ------------------------------------------------------------------------------------------------------
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode("OK"); err != nil {
		h.logger.Error("Failed to encode health response", zap.Error(err))
	}
}

// ------------------------------------------------------------------------------------------------------
func (h *Handler) sendErrorResponse(w http.ResponseWriter, err error) {
	statusCode := apperror.GetHTTPStatusCode(err)
	errorResponse := apperror.NewErrorResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if encodeErr := json.NewEncoder(w).Encode(errorResponse); encodeErr != nil {
		h.logger.Error("Failed to encode error response",
			zap.Error(encodeErr),
			zap.Error(err),
		)
	}
}
