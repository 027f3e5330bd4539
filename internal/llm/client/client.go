package client

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Chat is the minimal surface the review service needs from a model client.
// One blocking request per call; no streaming, no tools.
type Chat interface {
	Generate(ctx context.Context, messages []*schema.Message) (string, error)
	Provider() string
	ModelName() string
}

// LLMClient wraps an eino chat model for a single provider/model pair.
type LLMClient struct {
	chatModel einomodel.BaseChatModel
	provider  string
	modelName string
}

func (c *LLMClient) Provider() string  { return c.provider }
func (c *LLMClient) ModelName() string { return c.modelName }

// Generate sends the conversation and returns the assistant's text. The
// history is normalized first so every provider sees a user-led conversation.
func (c *LLMClient) Generate(ctx context.Context, messages []*schema.Message) (string, error) {
	if c.chatModel == nil {
		return "", fmt.Errorf("llm client not initialized")
	}

	normalized, _ := normalizeConversationHistory(messages, "")

	out, err := c.chatModel.Generate(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", c.provider, err)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("%s returned an empty response", c.provider)
	}
	return out.Content, nil
}

const defaultFallbackUserMessage = "Please continue."

// normalizeConversationHistory enforces the shape providers expect: optional
// leading system messages, then a user message. Leading assistant messages
// are dropped; when no user message remains, fallback is inserted.
func normalizeConversationHistory(history []*schema.Message, fallback string) ([]*schema.Message, bool) {
	if strings.TrimSpace(fallback) == "" {
		fallback = defaultFallbackUserMessage
	}

	var system []*schema.Message
	rest := history
	for len(rest) > 0 && rest[0].Role == schema.System {
		system = append(system, rest[0])
		rest = rest[1:]
	}

	firstUser := -1
	for i, msg := range rest {
		if msg.Role == schema.User {
			firstUser = i
			break
		}
	}

	if firstUser == 0 {
		return history, false
	}

	result := make([]*schema.Message, 0, len(history)+1)
	result = append(result, system...)
	if firstUser == -1 {
		result = append(result, schema.UserMessage(fallback))
		result = append(result, rest...)
	} else {
		result = append(result, rest[firstUser:]...)
	}
	return result, true
}
