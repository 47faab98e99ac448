package llmprovider

import "context"

// Provider defines the interface for LLM text-completion providers
type Provider interface {
	// Complete sends a completion request and returns a response
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

// Completer is the minimal completion capability consumed by callers that
// do not care about provider selection. *Manager satisfies it.
type Completer interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a normalized completion request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
