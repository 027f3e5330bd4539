package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"codesage/internal/models"
	"codesage/internal/services"
	"codesage/internal/utils"
)

// App struct
type App struct {
	ctx context.Context

	sessions    services.SessionService
	appSettings services.AppSettingsService
	dbClose     func() error
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// StartSession opens a fresh in-memory session for a new editor tab.
func (a *App) StartSession() (*models.Session, error) {
	if a.sessions == nil {
		return nil, fmt.Errorf("session service not available")
	}
	return a.sessions.Start(), nil
}

// GetSession returns the current state of a session.
func (a *App) GetSession(sessionID string) (*models.Session, error) {
	if a.sessions == nil {
		return nil, fmt.Errorf("session service not available")
	}
	return a.sessions.Get(sessionID)
}

// SetCode stores pasted code in the session. Language may be a concrete
// identifier or "auto".
func (a *App) SetCode(sessionID, code, language string) (*models.Session, error) {
	if a.sessions == nil {
		return nil, fmt.Errorf("session service not available")
	}
	return a.sessions.SetCode(sessionID, code, language)
}

// LoadCodeFile reads a source file from disk into the session.
func (a *App) LoadCodeFile(sessionID, path, language string) (*models.Session, error) {
	if a.sessions == nil {
		return nil, fmt.Errorf("session service not available")
	}
	session, err := a.sessions.LoadFile(sessionID, path, language)
	if err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to load file %s: %v", path, err))
		return nil, err
	}
	return session, nil
}

// InsertGeneratedCode moves the session's last generated code into the
// editor, replacing the current code.
func (a *App) InsertGeneratedCode(sessionID string) (*models.Session, error) {
	if a.sessions == nil {
		return nil, fmt.Errorf("session service not available")
	}
	session, err := a.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session.LastGenerated == nil {
		return nil, fmt.Errorf("no generated code to insert")
	}
	return a.sessions.SetCode(sessionID, session.LastGenerated.Code, session.LastGenerated.Language)
}

// DownloadFileName suggests a file name for saving generated code.
func (a *App) DownloadFileName(language string) string {
	return "generated" + utils.ExtensionFor(language)
}

// GetAppSettings returns the current application settings
func (a *App) GetAppSettings() (*models.AppSettings, error) {
	if a.appSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.appSettings.Get()
}

// UpdateAppSettings updates theme, locale and default model and returns the
// updated settings
func (a *App) UpdateAppSettings(theme, locale, defaultModelKey string) (*models.AppSettings, error) {
	if a.appSettings == nil {
		return nil, fmt.Errorf("app settings service not available")
	}
	return a.appSettings.Update(theme, locale, defaultModelKey)
}
