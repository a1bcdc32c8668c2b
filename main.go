package main

import (
	"embed"
	"errors"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"elemental/internal/config"
	"elemental/internal/database"
	"elemental/internal/services"
	"elemental/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := utils.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLog := logger.NewDefaultLogger()

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath,
		LogLevel: database.ParseLogLevel(cfg.LogLevel),
	})
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	ring, err := services.OpenKeyring(cfg.KeyringBackend, cfg.DataDir, cfg.KeyringPassword)
	if err != nil {
		log.Fatalf("Error opening keyring: %v", err)
	}

	svc := services.NewServices(db, ring, appLog)
	app := NewApp(svc)
	if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	err = wails.Run(&options.App{
		Title:     "Elemental",
		Width:     1024,
		Height:    768,
		MinWidth:  980,
		MinHeight: 650,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Elemental",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           appLog,
		LogLevel:         cfg.WailsLogLevel(),
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
			svc.Settings,
			svc.Models,
			svc.Keyring,
			svc.Craft,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
