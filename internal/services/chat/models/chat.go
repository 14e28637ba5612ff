package models

// Allowed model identifiers. Unrecognized values are rejected up front
// rather than silently swapped for the default.
const (
	ModelGPT4oMini  = "gpt-4o-mini"
	ModelGPT4o      = "gpt-4o"
	ModelGPT4Turbo  = "gpt-4-turbo"
	ModelGPT35Turbo = "gpt-3.5-turbo"
	DefaultModel    = ModelGPT4oMini
)

// Bounds and defaults for generation parameters. The same bounds are applied
// twice: the validator rejects out-of-range input, and the request builder
// clamps again before anything is forwarded upstream.
const (
	MaxUserPromptLen   = 8000
	MaxSystemPromptLen = 4000

	MinTemperature     float32 = 0
	MaxTemperature     float32 = 2
	DefaultTemperature float32 = 0.7

	MinPenalty     float32 = 0
	MaxPenalty     float32 = 2
	DefaultPenalty float32 = 0

	MinMaxTokens     = 1
	MaxMaxTokens     = 4000
	DefaultMaxTokens = 1000

	MaxStopSequences   = 4
	MaxStopSequenceLen = 100
)

// ChatRequest is the inbound request body for POST /api/chat. Numeric fields
// are pointers so that "absent" and "zero" stay distinguishable; wrong JSON
// types fail at decode time.
type ChatRequest struct {
	Model            string   `json:"model" validate:"omitempty,oneof=gpt-4o-mini gpt-4o gpt-4-turbo gpt-3.5-turbo"`
	SystemPrompt     string   `json:"systemPrompt" validate:"omitempty,max=4000"`
	UserPrompt       string   `json:"userPrompt" validate:"notblank,max=8000"`
	Temperature      *float32 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxTokens        *int     `json:"maxTokens" validate:"omitempty,gte=1,lte=4000"`
	PresencePenalty  *float32 `json:"presencePenalty" validate:"omitempty,gte=0,lte=2"`
	FrequencyPenalty *float32 `json:"frequencyPenalty" validate:"omitempty,gte=0,lte=2"`
	StopSequence     string   `json:"stopSequence"`
}

// Usage reports token consumption for a completed request
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the normalized success envelope returned to the client
type ChatResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
	Usage   *Usage `json:"usage,omitempty"`
	Model   string `json:"model,omitempty"`
}

// HealthResponse is the GET /health body
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
