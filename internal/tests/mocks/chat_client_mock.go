package mocks

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"codesage/internal/llm/client"
	"codesage/internal/models"
)

// ChatClientMock scripts model responses for review service tests.
type ChatClientMock struct {
	GenerateFunc func(ctx context.Context, messages []*schema.Message) (string, error)
	ProviderID   string
	Model        string
}

func (m *ChatClientMock) Generate(ctx context.Context, messages []*schema.Message) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, messages)
	}
	return "", nil
}

func (m *ChatClientMock) Provider() string {
	if m.ProviderID != "" {
		return m.ProviderID
	}
	return "mock"
}

func (m *ChatClientMock) ModelName() string {
	if m.Model != "" {
		return m.Model
	}
	return "mock-model"
}

// ChatClientFactoryMock hands out a scripted chat client.
type ChatClientFactoryMock struct {
	NewFunc func(ctx context.Context, model *models.LLMModel, apiKey string) (client.Chat, error)
}

func (m *ChatClientFactoryMock) New(ctx context.Context, model *models.LLMModel, apiKey string) (client.Chat, error) {
	if m.NewFunc != nil {
		return m.NewFunc(ctx, model, apiKey)
	}
	return &ChatClientMock{}, nil
}

// ApiKeyStoreMock stands in for the OS keyring.
type ApiKeyStoreMock struct {
	GetApiKeyFunc func(provider string) (string, error)
}

func (m *ApiKeyStoreMock) GetApiKey(provider string) (string, error) {
	if m.GetApiKeyFunc != nil {
		return m.GetApiKeyFunc(provider)
	}
	return "test-api-key", nil
}
