package unit_tests

import (
	"context"
	"errors"
	"testing"

	"codesage/internal/models"
	"codesage/internal/services"
	"codesage/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestAppSettingsService_Get(t *testing.T) {
	repo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return &models.AppSettings{ID: 1, Version: 1, Theme: "dark", Locale: "fr", DefaultModelKey: "gemini/gemini-2.0-flash"}, nil
		},
	}
	svc := services.NewAppSettingsService(repo)

	settings, err := svc.Get()
	assert.NoError(t, err)
	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "fr", settings.Locale)
	assert.Equal(t, "gemini/gemini-2.0-flash", settings.DefaultModelKey)
}

func TestAppSettingsService_Get_RepositoryError(t *testing.T) {
	repo := &mocks.AppSettingsRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.AppSettings, error) {
			return nil, errors.New("database error")
		},
	}
	svc := services.NewAppSettingsService(repo)

	_, err := svc.Get()
	assert.EqualError(t, err, "database error")
}

func TestAppSettingsService_Update(t *testing.T) {
	var persisted *models.AppSettings
	repo := &mocks.AppSettingsRepositoryMock{
		UpdateFunc: func(ctx context.Context, settings *models.AppSettings) error {
			persisted = settings
			return nil
		},
	}
	svc := services.NewAppSettingsService(repo)

	updated, err := svc.Update("dark", "en", "anthropic/claude-3-5-haiku-20241022")
	assert.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	assert.Equal(t, "en", updated.Locale)
	assert.Equal(t, "anthropic/claude-3-5-haiku-20241022", updated.DefaultModelKey)
	assert.NotNil(t, persisted)
	assert.Equal(t, "dark", persisted.Theme)
}

func TestAppSettingsService_Update_Validation(t *testing.T) {
	svc := services.NewAppSettingsService(&mocks.AppSettingsRepositoryMock{})

	_, err := svc.Update("", "en", "")
	assert.Error(t, err)

	_, err = svc.Update("dark", "", "")
	assert.Error(t, err)

	_, err = svc.Update("neon", "en", "")
	assert.Error(t, err)
}
