package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/internal/metrics"
	"github.com/promptlab/promptlab/internal/services/chat"
	"github.com/promptlab/promptlab/internal/services/chat/models"
	"github.com/promptlab/promptlab/pkg/httpext"
)

// HandleChat handles POST /api/chat: decode, validate, forward, translate.
func HandleChat(chatService chat.Service, w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		metrics.CountRequest("chat", strconv.Itoa(http.StatusBadRequest))
		httpext.JsonError(w, "Invalid request body", chat.ErrTypeValidation, http.StatusBadRequest)
		return
	}

	resp, err := chatService.ProcessChat(r.Context(), &req)
	if err != nil {
		var chatErr *chat.ChatError
		if !errors.As(err, &chatErr) {
			log.Error().Err(err).Msg("Unclassified chat processing error")
			metrics.CountRequest("chat", strconv.Itoa(http.StatusInternalServerError))
			httpext.JsonError(w, "Internal server error", chat.ErrTypeServer, http.StatusInternalServerError)
			return
		}

		metrics.CountRequest("chat", strconv.Itoa(chatErr.Status))
		httpext.JsonError(w, chatErr.Message, chatErr.Type, chatErr.Status)
		return
	}

	log.Info().
		Str("client_ip", r.RemoteAddr).
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("Chat request processed successfully")

	metrics.CountRequest("chat", strconv.Itoa(http.StatusOK))
	httpext.JsonResponse(w, http.StatusOK, resp)
}
