package main

import (
	"context"
	"embed"
	"fmt"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"codesage/internal/database"
	"codesage/internal/events"
	"codesage/internal/services"
	"codesage/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := utils.LoadEnv(); err != nil && database.IsDevelopment() {
		log.Printf("no .env loaded: %v", err)
	}

	app := NewApp()

	db, err := database.Init(database.Config{
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	//Create each service
	dbService := services.NewDbServices(db)
	keyringService := services.NewKeyringService()
	gitService := services.NewGitService()
	workspaceService := services.NewWorkspaceService()
	sessionService := services.NewSessionService(gitService)
	reviewService := services.NewReviewService(sessionService, dbService.ModelConfigs, dbService.Templates, keyringService, nil)

	app.sessions = sessionService
	app.appSettings = dbService.AppSettings

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "CodeSage",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "CodeSage",
		},
		BackgroundColour: &options.RGBA{R: 24, G: 26, B: 32, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
			events.EnableRuntimeEmitter()

			if err := dbService.StartDbServices(ctx); err != nil {
				fmt.Println("Error starting db services:", err)
			}
			if err := keyringService.Startup(); err != nil {
				fmt.Println("Error opening keyring:", err)
			}
			workspaceService.Startup(ctx)
			sessionService.Startup(ctx)
			if err := reviewService.Startup(ctx); err != nil {
				fmt.Println("Error starting review service:", err)
			}
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			dbService.AppSettings,
			dbService.ModelConfigs,
			dbService.Templates,
			keyringService,
			workspaceService,
			reviewService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
