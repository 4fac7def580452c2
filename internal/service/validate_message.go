package service

import (
	"strings"

	apperror "chat-agent-service/internal/error"
)

// ChatRequest represents the incoming chat request
type ChatRequest struct {
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

// SearchRequest represents the incoming search request. A zero Count
// means the default result count.
type SearchRequest struct {
	Query string `json:"query"`
	Count int    `json:"count,omitempty"`
}

// ------------------------------------------------------------------------------------------------------
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return apperror.NewValidationError("message cannot be empty", nil)
	}
	return nil
}

// ------------------------------------------------------------------------------------------------------
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return apperror.NewValidationError("query cannot be empty", nil)
	}
	if r.Count < 0 {
		return apperror.NewValidationError("count cannot be negative", nil)
	}
	return nil
}
