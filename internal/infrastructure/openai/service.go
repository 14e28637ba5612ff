package openai

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

type Service struct {
	client *openai.Client
}

// NewService builds the upstream client from the configured credential. The
// credential is held by the client only; it is never written to logs or
// echoed in responses.
func NewService(apiKey string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	log.Info().Msg("Initialising OpenAI client")

	return &Service{
		client: openai.NewClient(apiKey),
	}, nil
}

func (s *Service) Client() *openai.Client {
	return s.client
}
