package handlers

import (
	"encoding/json"
	"net/http"

	apperror "chat-agent-service/internal/error"
	"chat-agent-service/internal/service"

	"go.uber.org/zap"
)

// ----------------------------------------------------------------------------------------------------------------
// SearchHandler serves POST /search. The result count defaults when the
// body omits it.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		h.sendErrorResponse(w, apperror.NewValidationError("Invalid JSON in request body", err))
		return
	}

	h.logger.Info("Received search request", zap.String("query", req.Query))

	results, err := h.searchService.ProcessSearch(r.Context(), req.Query, req.Count)
	if err != nil {
		h.logger.Error("Search failed", zap.Error(err))
		h.sendErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if encodeErr := json.NewEncoder(w).Encode(results); encodeErr != nil {
		h.logger.Error("Failed to encode response", zap.Error(encodeErr))
	}
}
