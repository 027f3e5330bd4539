package unit_tests

import (
	"context"
	"testing"

	"codesage/internal/models"
	"codesage/internal/services"
	"codesage/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestModelConfigService_Startup_SeedsDefaults(t *testing.T) {
	seeded := map[string]bool{}
	repo := &mocks.ModelSettingRepositoryMock{
		UpsertFunc: func(modelKey, provider string, enabled bool) (*models.ModelSetting, error) {
			seeded[modelKey] = enabled
			return &models.ModelSetting{ModelKey: modelKey, Provider: provider, Enabled: enabled}, nil
		},
	}
	svc := services.NewModelConfigService(repo)
	assert.NoError(t, svc.Startup(context.Background()))

	// Every catalog model gets a stored setting, enabled by default.
	assert.NotEmpty(t, seeded)
	for key, enabled := range seeded {
		assert.True(t, enabled, "model %s should be seeded enabled", key)
	}
	assert.Contains(t, seeded, "gemini/gemini-2.0-flash")
	assert.Contains(t, seeded, "gemini/gemini-2.5-pro?thinking=true")

	model, err := svc.GetModel("gemini/gemini-2.0-flash")
	assert.NoError(t, err)
	assert.True(t, model.Enabled)
	assert.Equal(t, "gemini", model.ProviderID)
	assert.Equal(t, "gemini-2.0-flash", model.APIName)
}

func TestModelConfigService_Startup_KeepsStoredSettings(t *testing.T) {
	repo := &mocks.ModelSettingRepositoryMock{
		ListFunc: func() ([]models.ModelSetting, error) {
			return []models.ModelSetting{
				{ModelKey: "gemini/gemini-2.0-flash", Provider: "gemini", Enabled: false},
			}, nil
		},
		UpsertFunc: func(modelKey, provider string, enabled bool) (*models.ModelSetting, error) {
			assert.NotEqual(t, "gemini/gemini-2.0-flash", modelKey, "stored settings must not be reseeded")
			return &models.ModelSetting{ModelKey: modelKey, Provider: provider, Enabled: enabled}, nil
		},
	}
	svc := services.NewModelConfigService(repo)
	assert.NoError(t, svc.Startup(context.Background()))

	model, err := svc.GetModel("gemini/gemini-2.0-flash")
	assert.NoError(t, err)
	assert.False(t, model.Enabled)
}

func TestModelConfigService_GetModel_ThinkingVariant(t *testing.T) {
	svc := services.NewModelConfigService(&mocks.ModelSettingRepositoryMock{})
	assert.NoError(t, svc.Startup(context.Background()))

	model, err := svc.GetModel("gemini/gemini-2.5-pro?thinking=true")
	assert.NoError(t, err)
	assert.NotNil(t, model.Thinking)
	assert.True(t, *model.Thinking)
	assert.Equal(t, "gemini-2.5-pro", model.APIName)
}

func TestModelConfigService_GetModel_Unknown(t *testing.T) {
	svc := services.NewModelConfigService(&mocks.ModelSettingRepositoryMock{})
	assert.NoError(t, svc.Startup(context.Background()))

	_, err := svc.GetModel("gemini/does-not-exist")
	assert.Error(t, err)

	_, err = svc.GetModel("  ")
	assert.Error(t, err)
}

func TestModelConfigService_SetModelEnabled(t *testing.T) {
	svc := services.NewModelConfigService(&mocks.ModelSettingRepositoryMock{})
	assert.NoError(t, svc.Startup(context.Background()))

	model, err := svc.SetModelEnabled("gemini/gemini-2.0-flash", false)
	assert.NoError(t, err)
	assert.False(t, model.Enabled)

	got, err := svc.GetModel("gemini/gemini-2.0-flash")
	assert.NoError(t, err)
	assert.False(t, got.Enabled)

	_, err = svc.SetModelEnabled("nope/nope", true)
	assert.Error(t, err)
}

func TestModelConfigService_SetProviderEnabled(t *testing.T) {
	svc := services.NewModelConfigService(&mocks.ModelSettingRepositoryMock{})
	assert.NoError(t, svc.Startup(context.Background()))

	updated, err := svc.SetProviderEnabled("openai", false)
	assert.NoError(t, err)
	assert.NotEmpty(t, updated)
	for _, model := range updated {
		assert.Equal(t, "openai", model.ProviderID)
		assert.False(t, model.Enabled)
	}

	// Other providers are untouched.
	gemini, err := svc.GetModel("gemini/gemini-2.0-flash")
	assert.NoError(t, err)
	assert.True(t, gemini.Enabled)
}

func TestModelConfigService_ListModelGroups(t *testing.T) {
	svc := services.NewModelConfigService(&mocks.ModelSettingRepositoryMock{})
	assert.NoError(t, svc.Startup(context.Background()))

	groups, err := svc.ListModelGroups()
	assert.NoError(t, err)
	assert.Len(t, groups, 3)
	assert.Equal(t, "gemini", groups[0].ProviderID)
	assert.Equal(t, "openai", groups[1].ProviderID)
	assert.Equal(t, "anthropic", groups[2].ProviderID)

	for _, group := range groups {
		assert.NotEmpty(t, group.Models)
		for i := 1; i < len(group.Models); i++ {
			assert.LessOrEqual(t, group.Models[i-1].DisplayName, group.Models[i].DisplayName)
		}
	}
}
