package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"elemental/internal/database"
	"elemental/internal/events"
	"elemental/internal/services"
)

// App struct
type App struct {
	ctx      context.Context
	services *services.Services
	dbClose  func() error
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services) *App {
	return &App{services: svc}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	if err := a.services.Startup(ctx); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to start services: %v", err))
	}
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

// IsDevelopment reports whether this is a development build.
func (a *App) IsDevelopment() bool {
	return database.IsDevelopment()
}
