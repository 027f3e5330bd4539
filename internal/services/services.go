package services

import (
	"context"

	"gorm.io/gorm"

	"codesage/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
type DbServices struct {
	AppSettings  AppSettingsService
	ModelConfigs ModelConfigService
	Templates    TemplateService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	appSettingsRepo := repositories.NewAppSettingsRepository(db)
	modelSettingRepo := repositories.NewModelSettingRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)

	return &DbServices{
		AppSettings:  NewAppSettingsService(appSettingsRepo),
		ModelConfigs: NewModelConfigService(modelSettingRepo),
		Templates:    NewTemplateService(templateRepo),
	}
}

// StartDbServices runs every service's startup hook with the app context.
func (s *DbServices) StartDbServices(ctx context.Context) error {
	s.AppSettings.Startup(ctx)
	if err := s.ModelConfigs.Startup(ctx); err != nil {
		return err
	}
	return s.Templates.Startup(ctx)
}
