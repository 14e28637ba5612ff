package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/internal/metrics"
	"github.com/promptlab/promptlab/internal/services/chat/models"
)

// upstreamTimeout bounds the single outbound call. On expiry the in-flight
// request is cancelled and the caller gets a timeout error.
const upstreamTimeout = 30 * time.Second

// placeholderContent is returned when the upstream reports success but the
// first choice carries no text.
const placeholderContent = "No response generated."

type Implementation struct {
	client Completer
}

func NewService(client Completer) (*Implementation, error) {
	if client == nil {
		return nil, fmt.Errorf("upstream client is required")
	}

	return &Implementation{client: client}, nil
}

func (s *Implementation) ProcessChat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	if chatErr := ValidateRequest(req); chatErr != nil {
		return nil, chatErr
	}

	payload := BuildCompletionRequest(req)

	log.Debug().
		Str("model", payload.Model).
		Int("message_count", len(payload.Messages)).
		Msg("Forwarding chat completion request")

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, payload)
	if err != nil {
		chatErr := translateUpstreamError(err)
		metrics.ObserveUpstream(payload.Model, chatErr.Type, time.Since(start))
		log.Error().
			Err(err).
			Str("model", payload.Model).
			Str("error_type", chatErr.Type).
			Msg("Upstream chat completion failed")
		return nil, chatErr
	}
	metrics.ObserveUpstream(payload.Model, "success", time.Since(start))

	content := placeholderContent
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		content = resp.Choices[0].Message.Content
	}

	model := resp.Model
	if model == "" {
		model = payload.Model
	}

	return &models.ChatResponse{
		Success: true,
		Content: content,
		Usage: &models.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Model: model,
	}, nil
}
