package client

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"google.golang.org/genai"
)

// GeminiModelOptions configures a Gemini-backed client.
type GeminiModelOptions struct {
	Model    string
	Thinking bool
}

// OpenAIModelOptions configures an OpenAI-backed client.
type OpenAIModelOptions struct {
	Model string
}

// ClaudeModelOptions configures an Anthropic-backed client.
type ClaudeModelOptions struct {
	Model    string
	Thinking bool
}

const claudeMaxTokens = 8192

// NewGeminiClient builds a client on the Gemini API. This is the default
// provider; the genai SDK client is handed to the eino gemini component.
func NewGeminiClient(ctx context.Context, apiKey string, opts GeminiModelOptions) (*LLMClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("gemini model name is required")
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Error creating genai client: %v", err)
		return nil, err
	}

	cfg := &gemini.Config{
		Client: sdk,
		Model:  opts.Model,
	}
	if opts.Thinking {
		cfg.ThinkingConfig = &genai.ThinkingConfig{IncludeThoughts: true}
	}

	chatModel, err := gemini.NewChatModel(ctx, cfg)
	if err != nil {
		log.Printf("Error creating gemini chat model: %v", err)
		return nil, err
	}

	return &LLMClient{chatModel: chatModel, provider: "gemini", modelName: opts.Model}, nil
}

// NewOpenAIClient builds a client on the OpenAI API.
func NewOpenAIClient(ctx context.Context, apiKey string, opts OpenAIModelOptions) (*LLMClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("openai model name is required")
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey: apiKey,
		Model:  opts.Model,
	})
	if err != nil {
		log.Printf("Error creating OpenAI client: %v", err)
		return nil, err
	}

	return &LLMClient{chatModel: chatModel, provider: "openai", modelName: opts.Model}, nil
}

// NewClaudeClient builds a client on the Anthropic API.
func NewClaudeClient(ctx context.Context, apiKey string, opts ClaudeModelOptions) (*LLMClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("anthropic model name is required")
	}

	chatModel, err := claude.NewChatModel(ctx, &claude.Config{
		APIKey:    apiKey,
		Model:     opts.Model,
		MaxTokens: claudeMaxTokens,
	})
	if err != nil {
		log.Printf("Error creating Claude client: %v", err)
		return nil, err
	}

	return &LLMClient{chatModel: chatModel, provider: "anthropic", modelName: opts.Model}, nil
}
