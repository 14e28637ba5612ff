package chat

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/promptlab/promptlab/internal/services/chat/models"
)

// Completer is the one upstream call the pipeline makes. *openai.Client
// satisfies it; tests substitute a mock.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service defines the interface for chat operations
type Service interface {
	// ProcessChat validates a request, forwards it upstream, and returns the
	// normalized response envelope. Failures are *ChatError values.
	ProcessChat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
}
