package chat

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Error type tags returned to clients. Each maps to exactly one HTTP status.
const (
	ErrTypeValidation    = "validation_error"
	ErrTypeInvalidKey    = "invalid_key"
	ErrTypeQuotaExceeded = "quota_exceeded"
	ErrTypeModelNotFound = "model_not_found"
	ErrTypeRateLimit     = "rate_limit"
	ErrTypeTimeout       = "timeout"
	ErrTypeServer        = "server_error"
)

// ChatError is a classified failure: a taxonomy tag, the HTTP status it maps
// to, and a user-facing message. Upstream internals never appear in Message.
type ChatError struct {
	Type    string
	Status  int
	Message string
	cause   error
}

func (e *ChatError) Error() string {
	return e.Message
}

func (e *ChatError) Unwrap() error {
	return e.cause
}

func newValidationError(message string) *ChatError {
	return &ChatError{
		Type:    ErrTypeValidation,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// translateUpstreamError classifies a failed upstream call into the fixed
// error taxonomy. Anything unrecognized becomes a sanitized server_error.
func translateUpstreamError(err error) *ChatError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ChatError{
			Type:    ErrTypeTimeout,
			Status:  http.StatusRequestTimeout,
			Message: "The request took too long to process. Please try again.",
			cause:   err,
		}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.Code.(type) {
		case string:
			switch code {
			case "insufficient_quota":
				return &ChatError{
					Type:    ErrTypeQuotaExceeded,
					Status:  http.StatusPaymentRequired,
					Message: "API quota exceeded. Please check your usage limits.",
					cause:   err,
				}
			case "invalid_api_key":
				return &ChatError{
					Type:    ErrTypeInvalidKey,
					Status:  http.StatusUnauthorized,
					Message: "Invalid API credentials.",
					cause:   err,
				}
			case "model_not_found":
				return &ChatError{
					Type:    ErrTypeModelNotFound,
					Status:  http.StatusBadRequest,
					Message: "The requested model is not available.",
					cause:   err,
				}
			}
		}

		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return &ChatError{
				Type:    ErrTypeInvalidKey,
				Status:  http.StatusUnauthorized,
				Message: "Invalid API credentials.",
				cause:   err,
			}
		case http.StatusTooManyRequests:
			return &ChatError{
				Type:    ErrTypeRateLimit,
				Status:  http.StatusTooManyRequests,
				Message: "Too many requests. Please slow down and try again.",
				cause:   err,
			}
		case http.StatusNotFound:
			return &ChatError{
				Type:    ErrTypeModelNotFound,
				Status:  http.StatusBadRequest,
				Message: "The requested model is not available.",
				cause:   err,
			}
		}
	}

	return &ChatError{
		Type:    ErrTypeServer,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred while processing your request.",
		cause:   err,
	}
}
