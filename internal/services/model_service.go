package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"elemental/internal/assets"
	"elemental/internal/models"
)

// ModelCatalog answers whether a model name belongs to the selectable set.
type ModelCatalog interface {
	IsKnown(name string) bool
	ProviderFor(name string) (string, bool)
}

type ModelCatalogService interface {
	ModelCatalog
	Startup(ctx context.Context) error
	ListModels() ([]models.LLMModel, error)
	ListModelGroups() ([]models.LLMModelGroup, error)
}

type modelCatalogService struct {
	data []byte
	ctx  context.Context

	mu            sync.RWMutex
	providerOrder []string
	providerNames map[string]string
	order         []string
	models        map[string]models.LLMModel
}

type rawModelFile struct {
	Providers []rawProvider `json:"providers"`
}

type rawProvider struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Models      []rawModel `json:"models"`
}

type rawModel struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// NewModelCatalogService reads the embedded catalog on Startup.
func NewModelCatalogService() ModelCatalogService {
	return NewModelCatalogServiceFromJSON(assets.ModelsData)
}

func NewModelCatalogServiceFromJSON(data []byte) ModelCatalogService {
	return &modelCatalogService{
		data:          data,
		models:        make(map[string]models.LLMModel),
		providerNames: make(map[string]string),
	}
}

func (s *modelCatalogService) Startup(ctx context.Context) error {
	s.ctx = ctx

	var parsed rawModelFile
	if err := json.Unmarshal(s.data, &parsed); err != nil {
		return fmt.Errorf("parse models asset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.providerOrder = make([]string, 0, len(parsed.Providers))
	s.order = s.order[:0]
	clear(s.models)
	for _, provider := range parsed.Providers {
		providerID := strings.TrimSpace(provider.ID)
		if providerID == "" {
			continue
		}
		providerName := strings.TrimSpace(provider.DisplayName)
		s.providerNames[providerID] = providerName
		s.providerOrder = append(s.providerOrder, providerID)
		for _, mdl := range provider.Models {
			name := strings.TrimSpace(mdl.Name)
			if name == "" {
				continue
			}
			if _, dup := s.models[name]; dup {
				return fmt.Errorf("model %s listed twice", name)
			}
			display := strings.TrimSpace(mdl.DisplayName)
			if display == "" {
				display = name
			}
			s.models[name] = models.LLMModel{
				Name:         name,
				DisplayName:  display,
				ProviderID:   providerID,
				ProviderName: s.providerName(providerID),
			}
			s.order = append(s.order, name)
		}
	}
	return nil
}

// ListModels returns every selectable model in catalog order.
func (s *modelCatalogService) ListModels() ([]models.LLMModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.LLMModel, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.models[name])
	}
	return out, nil
}

func (s *modelCatalogService) ListModelGroups() ([]models.LLMModelGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]models.LLMModelGroup, 0, len(s.providerOrder))
	for _, providerID := range s.providerOrder {
		group := models.LLMModelGroup{
			ProviderID:   providerID,
			ProviderName: s.providerName(providerID),
		}
		for _, name := range s.order {
			if mdl := s.models[name]; mdl.ProviderID == providerID {
				group.Models = append(group.Models, mdl)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *modelCatalogService) IsKnown(name string) bool {
	_, ok := s.ProviderFor(name)
	return ok
}

func (s *modelCatalogService) ProviderFor(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mdl, ok := s.models[strings.TrimSpace(name)]
	if !ok {
		return "", false
	}
	return mdl.ProviderID, true
}

func (s *modelCatalogService) providerName(providerID string) string {
	if name, ok := s.providerNames[providerID]; ok && name != "" {
		return name
	}
	return providerID
}
