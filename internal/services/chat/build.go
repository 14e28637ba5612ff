package chat

import (
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/promptlab/promptlab/internal/services/chat/models"
)

// BuildCompletionRequest turns a validated ChatRequest into the upstream
// payload. Numeric parameters are clamped here regardless of what validation
// did: the builder must never forward an out-of-bound value, even if it is
// reached through a path that skipped validation.
func BuildCompletionRequest(req *models.ChatRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, 2)

	if system := strings.TrimSpace(req.SystemPrompt); system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: strings.TrimSpace(req.UserPrompt),
	})

	model := req.Model
	if model == "" {
		model = models.DefaultModel
	}

	payload := openai.ChatCompletionRequest{
		Model:            model,
		Messages:         messages,
		Temperature:      clampFloat(req.Temperature, models.MinTemperature, models.MaxTemperature, models.DefaultTemperature),
		MaxTokens:        clampInt(req.MaxTokens, models.MinMaxTokens, models.MaxMaxTokens, models.DefaultMaxTokens),
		PresencePenalty:  clampFloat(req.PresencePenalty, models.MinPenalty, models.MaxPenalty, models.DefaultPenalty),
		FrequencyPenalty: clampFloat(req.FrequencyPenalty, models.MinPenalty, models.MaxPenalty, models.DefaultPenalty),
	}

	if stop := splitStopSequences(req.StopSequence); len(stop) > 0 {
		payload.Stop = stop
	}

	return payload
}

// splitStopSequences parses a comma-separated stop list: entries are trimmed,
// empties and entries over the length cap are dropped, and at most the first
// four survivors are kept. An empty result means the stop field is omitted
// upstream rather than sent as an empty list.
func splitStopSequences(raw string) []string {
	if raw == "" {
		return nil
	}

	var stop []string
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" || len(trimmed) > models.MaxStopSequenceLen {
			continue
		}
		stop = append(stop, trimmed)
		if len(stop) == models.MaxStopSequences {
			break
		}
	}
	return stop
}

func clampFloat(value *float32, min, max, fallback float32) float32 {
	if value == nil {
		return fallback
	}
	if *value < min {
		return min
	}
	if *value > max {
		return max
	}
	return *value
}

func clampInt(value *int, min, max, fallback int) int {
	if value == nil {
		return fallback
	}
	if *value < min {
		return min
	}
	if *value > max {
		return max
	}
	return *value
}
