package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"vehicleassist/internal/service"
	"vehicleassist/internal/transcript"
)

// ChatService answers messages and serves the exchange log.
type ChatService interface {
	Reply(ctx context.Context, message string) (string, error)
	History(ctx context.Context) ([]transcript.Entry, error)
}

// ChatHandler holds the /chat endpoints.
type ChatHandler struct {
	svc    ChatService
	logger *zap.Logger
}

// NewChatHandler builds handler set.
func NewChatHandler(svc ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		svc:    svc,
		logger: logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// HandleChat handles POST /chat.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	answer, err := h.svc.Reply(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrClassify) {
			h.logger.Error("classifier unavailable", zap.Error(err))
			writeError(w, http.StatusBadGateway, "classifier unavailable")
			return
		}
		h.logger.Error("reply failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to answer")
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: answer})
}

// HandleHistory handles GET /chat/history.
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context())
	if err != nil {
		h.logger.Error("history fetch failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"exchanges": entries,
	})
}
