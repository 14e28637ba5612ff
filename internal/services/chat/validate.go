package chat

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/promptlab/promptlab/internal/services/chat/models"
)

// use a single instance of Validate, it caches struct info
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// required accepts whitespace-only strings; the prompt must survive a trim
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// ValidateRequest checks a decoded ChatRequest against the parameter rules.
// It rejects rather than repairs: out-of-range values are an error here even
// though the request builder would clamp them anyway.
func ValidateRequest(req *models.ChatRequest) *ChatError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newValidationError("Invalid request")
	}

	return newValidationError(fieldMessage(fieldErrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "UserPrompt":
		if fe.Tag() == "max" {
			return "userPrompt must be at most 8000 characters"
		}
		return "userPrompt is required and must be a non-empty string"
	case "SystemPrompt":
		return "systemPrompt must be at most 4000 characters"
	case "Model":
		return "model must be one of: " + strings.Join([]string{
			models.ModelGPT4oMini,
			models.ModelGPT4o,
			models.ModelGPT4Turbo,
			models.ModelGPT35Turbo,
		}, ", ")
	case "Temperature":
		return "temperature must be a number between 0 and 2"
	case "MaxTokens":
		return "maxTokens must be an integer between 1 and 4000"
	case "PresencePenalty":
		return "presencePenalty must be a number between 0 and 2"
	case "FrequencyPenalty":
		return "frequencyPenalty must be a number between 0 and 2"
	default:
		return "Invalid request"
	}
}
