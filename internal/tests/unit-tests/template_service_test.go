package unit_tests

import (
	"context"
	"testing"

	"codesage/internal/models"
	"codesage/internal/services"
	"codesage/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestTemplateService_Startup_SeedsBuiltIns(t *testing.T) {
	created := map[string]*models.PromptTemplate{}
	repo := &mocks.TemplateRepositoryMock{
		CreateFunc: func(ctx context.Context, tmpl *models.PromptTemplate) error {
			created[tmpl.Name] = tmpl
			return nil
		},
	}
	svc := services.NewTemplateService(repo)
	assert.NoError(t, svc.Startup(context.Background()))

	assert.Len(t, created, 6)
	assert.Contains(t, created, "Web API")
	assert.Contains(t, created, "CLI Tool")
	assert.Contains(t, created, "Microservice")
	for name, tmpl := range created {
		assert.True(t, tmpl.BuiltIn, "seeded template %s must be marked built-in", name)
		assert.NotEmpty(t, tmpl.Content)
	}
}

func TestTemplateService_Startup_SkipsExisting(t *testing.T) {
	createdCount := 0
	repo := &mocks.TemplateRepositoryMock{
		GetByNameFunc: func(ctx context.Context, name string) (*models.PromptTemplate, error) {
			if name == "Web API" {
				return &models.PromptTemplate{ID: 1, Name: name, Content: "user edited", BuiltIn: true}, nil
			}
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, tmpl *models.PromptTemplate) error {
			assert.NotEqual(t, "Web API", tmpl.Name)
			createdCount++
			return nil
		},
	}
	svc := services.NewTemplateService(repo)
	assert.NoError(t, svc.Startup(context.Background()))
	assert.Equal(t, 5, createdCount)
}

func TestTemplateService_GetTemplateByName_NotFound(t *testing.T) {
	svc := services.NewTemplateService(&mocks.TemplateRepositoryMock{})

	tmpl, err := svc.GetTemplateByName("does not exist")
	assert.NoError(t, err)
	assert.Nil(t, tmpl)
}

func TestTemplateService_CreateTemplate(t *testing.T) {
	repo := &mocks.TemplateRepositoryMock{
		CreateFunc: func(ctx context.Context, tmpl *models.PromptTemplate) error {
			tmpl.ID = 42
			return nil
		},
	}
	svc := services.NewTemplateService(repo)

	tmpl, err := svc.CreateTemplate(&models.PromptTemplate{Name: "Game Loop", Content: "Structure around an update/render loop."})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), tmpl.ID)
}

func TestTemplateService_CreateTemplate_Error(t *testing.T) {
	repo := &mocks.TemplateRepositoryMock{
		CreateFunc: func(ctx context.Context, tmpl *models.PromptTemplate) error {
			return assert.AnError
		},
	}
	svc := services.NewTemplateService(repo)

	tmpl, err := svc.CreateTemplate(&models.PromptTemplate{Name: "Broken"})
	assert.Error(t, err)
	assert.Nil(t, tmpl)
}

func TestTemplateService_UpdateAndDelete(t *testing.T) {
	var updated *models.PromptTemplate
	var deletedID uint
	repo := &mocks.TemplateRepositoryMock{
		UpdateFunc: func(ctx context.Context, tmpl *models.PromptTemplate) error {
			updated = tmpl
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}
	svc := services.NewTemplateService(repo)

	_, err := svc.UpdateTemplate(&models.PromptTemplate{ID: 7, Name: "Web API", Content: "changed"})
	assert.NoError(t, err)
	assert.Equal(t, "changed", updated.Content)

	assert.NoError(t, svc.DeleteTemplate(7))
	assert.Equal(t, uint(7), deletedID)
}

func TestTemplateService_ListTemplates(t *testing.T) {
	repo := &mocks.TemplateRepositoryMock{
		GetAllFunc: func(ctx context.Context) ([]*models.PromptTemplate, error) {
			return []*models.PromptTemplate{
				{ID: 1, Name: "Web API", BuiltIn: true},
				{ID: 2, Name: "My Template"},
			}, nil
		},
	}
	svc := services.NewTemplateService(repo)

	list, err := svc.ListTemplates()
	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Web API", list[0].Name)
}
