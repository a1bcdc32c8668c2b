package services

import (
	"context"

	"github.com/99designs/keyring"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"

	"elemental/internal/repositories"
)

// Services aggregates the services bound to the frontend.
type Services struct {
	Settings SettingsService
	Models   ModelCatalogService
	Keyring  *KeyringService
	Craft    *CraftService
}

// NewServices wires every service on top of db and the opened keyring.
func NewServices(db *gorm.DB, ring keyring.Keyring, log logger.Logger) *Services {
	configRepo := repositories.NewConfigRepository(db)
	catalog := NewModelCatalogService()
	keys := NewKeyringService(ring)

	return &Services{
		Settings: NewSettingsService(configRepo, catalog, log),
		Models:   catalog,
		Keyring:  keys,
		Craft:    NewCraftService(configRepo, catalog, keys, nil, log),
	}
}

// Startup hands the runtime context to each service and loads the model catalog.
func (s *Services) Startup(ctx context.Context) error {
	if err := s.Models.Startup(ctx); err != nil {
		return err
	}
	s.Settings.Startup(ctx)
	s.Craft.Startup(ctx)
	return nil
}
