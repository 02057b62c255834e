package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/Gentor/internal/config"
)

const systemPrompt = "You are Gentor, an expert coding assistant. Help with " +
	"programming tasks, code generation, debugging, and explanations. Be " +
	"concise and helpful."

// ChatService sends single prompts to the configured completion endpoint.
// Each request is independent: no conversation history is kept.
type ChatService struct {
	config *config.Settings
}

func NewChatService(cfg *config.Settings) *ChatService {
	return &ChatService{config: cfg}
}

// Complete sends the system instruction plus the user prompt to the given
// model and returns the first choice's text. The client is built per call so
// a settings save takes effect on the next request without a restart.
func (cs *ChatService) Complete(ctx context.Context, model, prompt string) (string, error) {
	clientConfig := openai.DefaultConfig(cs.config.APIKey)
	if cs.config.BaseURL != "" {
		clientConfig.BaseURL = cs.config.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
