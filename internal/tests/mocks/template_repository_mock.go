package mocks

import (
	"context"

	"codesage/internal/models"
)

type TemplateRepositoryMock struct {
	GetFunc       func(ctx context.Context, id uint) (*models.PromptTemplate, error)
	GetByNameFunc func(ctx context.Context, name string) (*models.PromptTemplate, error)
	GetAllFunc    func(ctx context.Context) ([]*models.PromptTemplate, error)
	CreateFunc    func(ctx context.Context, template *models.PromptTemplate) error
	UpdateFunc    func(ctx context.Context, template *models.PromptTemplate) error
	DeleteFunc    func(ctx context.Context, id uint) error
}

func (m *TemplateRepositoryMock) Get(ctx context.Context, id uint) (*models.PromptTemplate, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *TemplateRepositoryMock) GetByName(ctx context.Context, name string) (*models.PromptTemplate, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *TemplateRepositoryMock) GetAll(ctx context.Context) ([]*models.PromptTemplate, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []*models.PromptTemplate{}, nil
}

func (m *TemplateRepositoryMock) Create(ctx context.Context, template *models.PromptTemplate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	return nil
}

func (m *TemplateRepositoryMock) Update(ctx context.Context, template *models.PromptTemplate) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, template)
	}
	return nil
}

func (m *TemplateRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
