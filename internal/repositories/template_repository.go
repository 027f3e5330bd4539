package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"codesage/internal/models"
)

type TemplateRepository interface {
	Get(ctx context.Context, id uint) (*models.PromptTemplate, error)
	GetByName(ctx context.Context, name string) (*models.PromptTemplate, error)
	GetAll(ctx context.Context) ([]*models.PromptTemplate, error)
	Create(ctx context.Context, template *models.PromptTemplate) error
	Update(ctx context.Context, template *models.PromptTemplate) error
	Delete(ctx context.Context, id uint) error
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Get(ctx context.Context, id uint) (*models.PromptTemplate, error) {
	var tmpl models.PromptTemplate
	if err := r.db.WithContext(ctx).First(&tmpl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("template %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("getting template %d: %w", id, err)
	}
	return &tmpl, nil
}

func (r *templateRepository) GetByName(ctx context.Context, name string) (*models.PromptTemplate, error) {
	var tmpl models.PromptTemplate
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&tmpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting template %q: %w", name, err)
	}
	return &tmpl, nil
}

func (r *templateRepository) GetAll(ctx context.Context) ([]*models.PromptTemplate, error) {
	var list []*models.PromptTemplate
	if err := r.db.WithContext(ctx).Order("built_in desc, name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return list, nil
}

func (r *templateRepository) Create(ctx context.Context, template *models.PromptTemplate) error {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("creating template: %w", err)
	}
	return nil
}

func (r *templateRepository) Update(ctx context.Context, template *models.PromptTemplate) error {
	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		return fmt.Errorf("updating template %d: %w", template.ID, err)
	}
	return nil
}

func (r *templateRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.PromptTemplate{}, id).Error; err != nil {
		return fmt.Errorf("deleting template %d: %w", id, err)
	}
	return nil
}
