package ark

import "time"

// Config holds Ark client configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Message is a single role-tagged chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat completion request
type Request struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// Choice is one completion alternative
type Choice struct {
	Message Message `json:"message"`
}

// Response represents a chat completion response
type Response struct {
	Choices []Choice `json:"choices"`
}

// ErrorResponse is the provider-side error body
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
