package mocks

import (
	"codesage/internal/models"
)

type ModelSettingRepositoryMock struct {
	ListFunc               func() ([]models.ModelSetting, error)
	GetByKeyFunc           func(modelKey string) (*models.ModelSetting, error)
	UpsertFunc             func(modelKey, provider string, enabled bool) (*models.ModelSetting, error)
	SetProviderEnabledFunc func(provider string, enabled bool) error
}

func (m *ModelSettingRepositoryMock) List() ([]models.ModelSetting, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return []models.ModelSetting{}, nil
}

func (m *ModelSettingRepositoryMock) GetByKey(modelKey string) (*models.ModelSetting, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(modelKey)
	}
	return nil, nil
}

func (m *ModelSettingRepositoryMock) Upsert(modelKey, provider string, enabled bool) (*models.ModelSetting, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(modelKey, provider, enabled)
	}
	return &models.ModelSetting{ModelKey: modelKey, Provider: provider, Enabled: enabled}, nil
}

func (m *ModelSettingRepositoryMock) SetProviderEnabled(provider string, enabled bool) error {
	if m.SetProviderEnabledFunc != nil {
		return m.SetProviderEnabledFunc(provider, enabled)
	}
	return nil
}
