package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cloudwego/eino/schema"

	"codesage/internal/events"
	"codesage/internal/llm/client"
	"codesage/internal/models"
	"codesage/internal/utils"
)

// ChatClientFactory builds a provider client for a catalog model. Injectable
// so tests can substitute a scripted model.
type ChatClientFactory interface {
	New(ctx context.Context, model *models.LLMModel, apiKey string) (client.Chat, error)
}

type defaultChatClientFactory struct{}

func (defaultChatClientFactory) New(ctx context.Context, model *models.LLMModel, apiKey string) (client.Chat, error) {
	switch model.ProviderID {
	case "gemini":
		return client.NewGeminiClient(ctx, apiKey, client.GeminiModelOptions{
			Model:    model.APIName,
			Thinking: model.Thinking != nil && *model.Thinking,
		})
	case "openai":
		return client.NewOpenAIClient(ctx, apiKey, client.OpenAIModelOptions{
			Model: model.APIName,
		})
	case "anthropic":
		return client.NewClaudeClient(ctx, apiKey, client.ClaudeModelOptions{
			Model:    model.APIName,
			Thinking: model.Thinking != nil && *model.Thinking,
		})
	default:
		return nil, fmt.Errorf("unsupported provider: %s", model.ProviderID)
	}
}

// ReviewService is the adapter between user actions and the model API: it
// builds one prompt per action, performs one blocking call, splits the reply
// into display sections and records the interaction. Failures leave the
// session exactly as it was.
type ReviewService struct {
	ctx          context.Context
	sessions     SessionService
	modelConfigs ModelConfigService
	templates    TemplateService
	keys         ApiKeyStore
	factory      ChatClientFactory

	inFlightMu sync.Mutex
	inFlight   map[string]bool // sessionID -> action running
}

func NewReviewService(sessions SessionService, modelConfigs ModelConfigService, templates TemplateService, keys ApiKeyStore, factory ChatClientFactory) *ReviewService {
	if factory == nil {
		factory = defaultChatClientFactory{}
	}
	return &ReviewService{
		sessions:     sessions,
		modelConfigs: modelConfigs,
		templates:    templates,
		keys:         keys,
		factory:      factory,
		inFlight:     make(map[string]bool),
	}
}

func (s *ReviewService) Startup(ctx context.Context) error {
	s.ctx = ctx
	if s.sessions == nil {
		return fmt.Errorf("session service not configured")
	}
	if s.modelConfigs == nil {
		return fmt.Errorf("model configuration service not configured")
	}
	if s.templates == nil {
		return fmt.Errorf("template service not configured")
	}
	if s.keys == nil {
		return fmt.Errorf("keyring service not configured")
	}
	return nil
}

// Analyze reviews the session's current code and returns the sectioned
// result.
func (s *ReviewService) Analyze(sessionID, modelKey string) (*models.AnalysisResult, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(session.CurrentCode) == "" {
		return nil, fmt.Errorf("no code loaded in this session")
	}

	prompt := buildAnalyzePrompt(session.Language, session.CurrentCode)
	raw, elapsed, usedModel, err := s.callModel(sessionID, modelKey, "analyze", prompt)
	if err != nil {
		return nil, err
	}

	result := parseAnalysisResponse(raw)
	interaction := models.Interaction{
		Kind:        models.InteractionAnalyze,
		Prompt:      prompt,
		RawResponse: raw,
		ModelKey:    usedModel,
		Elapsed:     elapsed,
		CreatedAt:   time.Now(),
	}
	if err := s.sessions.RecordInteraction(sessionID, interaction, result, nil); err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateCode produces new code from a description, optionally shaped by a
// named template and refined by feedback on a previous attempt.
func (s *ReviewService) GenerateCode(sessionID, modelKey, language, description, templateName, refinement string) (*models.GeneratedCode, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("a description of the desired functionality is required")
	}
	language = strings.TrimSpace(strings.ToLower(language))
	if language == "" {
		return nil, fmt.Errorf("a target language is required")
	}
	// The UI's auto-detect sentinel resolves to the session's language; it
	// must never reach the prompt.
	if language == "auto" {
		language = session.Language
		if language == "" || language == utils.LanguagePlainText {
			return nil, fmt.Errorf("select a target language before generating code")
		}
	}

	templateContent := ""
	if templateName != "" && templateName != "Custom" {
		tmpl, err := s.templates.GetTemplateByName(templateName)
		if err != nil {
			return nil, err
		}
		if tmpl != nil {
			templateContent = tmpl.Content
		}
	}

	prompt := buildGeneratePrompt(language, description, templateContent, refinement)
	raw, elapsed, usedModel, err := s.callModel(sessionID, modelKey, "generate", prompt)
	if err != nil {
		return nil, err
	}

	result := parseGenerationResponse(raw, language)
	interaction := models.Interaction{
		Kind:        models.InteractionGenerate,
		Prompt:      prompt,
		RawResponse: raw,
		ModelKey:    usedModel,
		Elapsed:     elapsed,
		CreatedAt:   time.Now(),
	}
	if err := s.sessions.RecordInteraction(sessionID, interaction, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AskFollowUp answers a question about the session's most recent analysis.
func (s *ReviewService) AskFollowUp(sessionID, modelKey, question string) (string, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("a question is required")
	}
	if session.LastAnalysis == nil {
		return "", fmt.Errorf("run an analysis before asking follow-up questions")
	}

	prompt := buildFollowUpPrompt(session.Language, session.CurrentCode, session.LastAnalysis, question)
	raw, elapsed, usedModel, err := s.callModel(sessionID, modelKey, "followup", prompt)
	if err != nil {
		return "", err
	}

	interaction := models.Interaction{
		Kind:        models.InteractionFollowUp,
		Prompt:      prompt,
		RawResponse: raw,
		ModelKey:    usedModel,
		Elapsed:     elapsed,
		CreatedAt:   time.Now(),
	}
	if err := s.sessions.RecordInteraction(sessionID, interaction, nil, nil); err != nil {
		return "", err
	}
	return raw, nil
}

// callModel performs the single blocking request shared by all actions. The
// session is never mutated here; callers record results only after success.
func (s *ReviewService) callModel(sessionID, modelKey, promptName, prompt string) (string, time.Duration, string, error) {
	if err := s.markInFlight(sessionID); err != nil {
		return "", 0, "", err
	}
	defer s.clearInFlight(sessionID)

	chat, model, err := s.newChat(modelKey)
	if err != nil {
		return "", 0, "", err
	}

	ctx := events.WithSession(s.baseContext(), sessionID)
	events.Emit(ctx, events.ReviewStarted, events.NewInfo(fmt.Sprintf("%s request sent to %s", promptName, model.DisplayName)))

	messages := []*schema.Message{
		schema.SystemMessage(client.SystemPrompt(promptName)),
		schema.UserMessage(prompt),
	}

	start := time.Now()
	raw, err := chat.Generate(ctx, messages)
	elapsed := time.Since(start)
	if err != nil {
		events.Emit(ctx, events.ReviewFailed, events.NewError(err.Error()))
		return "", 0, "", err
	}

	evt := events.NewSuccess(fmt.Sprintf("%s finished in %s", promptName, elapsed.Round(time.Millisecond)))
	evt.Metadata = map[string]string{"elapsedMs": fmt.Sprintf("%d", elapsed.Milliseconds())}
	events.Emit(ctx, events.ReviewFinished, evt)

	return raw, elapsed, model.Key, nil
}

func (s *ReviewService) newChat(modelKey string) (client.Chat, *models.LLMModel, error) {
	modelKey = strings.TrimSpace(modelKey)
	if modelKey == "" {
		return nil, nil, fmt.Errorf("model is required")
	}

	model, err := s.modelConfigs.GetModel(modelKey)
	if err != nil {
		return nil, nil, err
	}
	if !model.Enabled {
		return nil, nil, fmt.Errorf("model %s is disabled", model.DisplayName)
	}

	apiKey, err := s.keys.GetApiKey(model.ProviderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get API key for %s: %w", model.ProviderID, err)
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("API key for %s is not configured", model.ProviderID)
	}

	chat, err := s.factory.New(s.baseContext(), model, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s client: %w", model.ProviderID, err)
	}
	return chat, model, nil
}

func (s *ReviewService) baseContext() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

// markInFlight enforces one outstanding model call per session.
func (s *ReviewService) markInFlight(sessionID string) error {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	if s.inFlight[sessionID] {
		return fmt.Errorf("an action is already running for this session")
	}
	s.inFlight[sessionID] = true
	return nil
}

func (s *ReviewService) clearInFlight(sessionID string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	delete(s.inFlight, sessionID)
}
