package services

import (
	"context"
	"fmt"

	"codesage/internal/models"
	"codesage/internal/repositories"
)

// builtInTemplates are the generation structure hints seeded on first run.
var builtInTemplates = map[string]string{
	"Web API":       "Structure the solution as an HTTP API: routing, handlers, request validation and JSON responses.",
	"CLI Tool":      "Structure the solution as a command-line tool: argument parsing, subcommands where sensible, exit codes.",
	"Data Pipeline": "Structure the solution as a data pipeline: staged input, transform and output steps with clear interfaces.",
	"ML Model":      "Structure the solution around a machine-learning workflow: data preparation, training, evaluation, inference.",
	"GUI Application": "Structure the solution as a desktop GUI application: a main window, event handlers and separated UI state.",
	"Microservice":  "Structure the solution as a standalone microservice: health endpoint, configuration via environment, graceful shutdown.",
}

type TemplateService interface {
	GetTemplate(id uint) (*models.PromptTemplate, error)
	GetTemplateByName(name string) (*models.PromptTemplate, error)
	ListTemplates() ([]*models.PromptTemplate, error)
	CreateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error)
	UpdateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error)
	DeleteTemplate(id uint) error
	Startup(ctx context.Context) error
}

type templateService struct {
	repo repositories.TemplateRepository
	ctx  context.Context
}

func NewTemplateService(repo repositories.TemplateRepository) TemplateService {
	return &templateService{repo: repo}
}

// Startup seeds the built-in templates that do not exist yet. User-created
// templates are left alone.
func (s *templateService) Startup(ctx context.Context) error {
	s.ctx = ctx
	for name, content := range builtInTemplates {
		existing, err := s.repo.GetByName(ctx, name)
		if err != nil {
			return fmt.Errorf("service: seed templates: %w", err)
		}
		if existing != nil {
			continue
		}
		tmpl := &models.PromptTemplate{Name: name, Content: content, BuiltIn: true}
		if err := s.repo.Create(ctx, tmpl); err != nil {
			return fmt.Errorf("service: seed template %q: %w", name, err)
		}
	}
	return nil
}

func (s *templateService) GetTemplate(id uint) (*models.PromptTemplate, error) {
	tmpl, err := s.repo.Get(s.ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: get template %d: %w", id, err)
	}
	return tmpl, nil
}

func (s *templateService) GetTemplateByName(name string) (*models.PromptTemplate, error) {
	tmpl, err := s.repo.GetByName(s.ctx, name)
	if err != nil {
		return nil, fmt.Errorf("service: get template %q: %w", name, err)
	}
	return tmpl, nil
}

func (s *templateService) ListTemplates() ([]*models.PromptTemplate, error) {
	list, err := s.repo.GetAll(s.ctx)
	if err != nil {
		return nil, fmt.Errorf("service: list templates: %w", err)
	}
	return list, nil
}

func (s *templateService) CreateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error) {
	if err := s.repo.Create(s.ctx, t); err != nil {
		return nil, fmt.Errorf("service: create template: %w", err)
	}
	return t, nil
}

func (s *templateService) UpdateTemplate(t *models.PromptTemplate) (*models.PromptTemplate, error) {
	if err := s.repo.Update(s.ctx, t); err != nil {
		return nil, fmt.Errorf("service: update template %d: %w", t.ID, err)
	}
	return t, nil
}

func (s *templateService) DeleteTemplate(id uint) error {
	if err := s.repo.Delete(s.ctx, id); err != nil {
		return fmt.Errorf("service: delete template %d: %w", id, err)
	}
	return nil
}
