// Package groq implements [persona.Completer] for the Groq
// OpenAI-compatible chat completions API.
//
// Requests are synchronous and non-streaming: one POST per conversation
// turn, bounded by the client timeout, with the reply extracted from the
// first choice of the response body.
package groq

const (
	defaultBaseURL   = "https://api.groq.com/openai"
	defaultModel     = "llama-3.1-70b-versatile"
	defaultMaxTokens = 1024
	completionsPath  = "/v1/chat/completions"
)

// apiRequest is the JSON body sent to the chat completions endpoint.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature *float64     `json:"temperature,omitempty"`
	MaxTokens   int          `json:"max_tokens"`
	Stream      bool         `json:"stream"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse is the JSON body returned on success.
type apiResponse struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []apiChoice `json:"choices"`
	Usage   apiUsage    `json:"usage"`
}

type apiChoice struct {
	Index        int        `json:"index"`
	Message      apiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// apiErrorResponse is the OpenAI-style JSON body returned on non-200
// HTTP responses.
type apiErrorResponse struct {
	Error apiErrorDetail `json:"error"`
}

type apiErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}
