package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
	"github.com/cloudwego/eino/components/model"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"elemental/internal/llm/client"
	"elemental/internal/models"
	"elemental/internal/repositories"
)

// defaultProvider owns the API key used for models missing from the catalog.
const defaultProvider = "openai"

// ChatModelFactory builds a chat model for the stored configuration.
type ChatModelFactory func(ctx context.Context, record models.ConfigRecord, apiKey string) (model.BaseChatModel, error)

// CraftService combines elements with the model, endpoint, system prompt and
// examples that are currently saved.
type CraftService struct {
	config   repositories.ConfigRepository
	catalog  ModelCatalog
	keys     *KeyringService
	newModel ChatModelFactory
	log      logger.Logger
	ctx      context.Context
}

func NewCraftService(config repositories.ConfigRepository, catalog ModelCatalog, keys *KeyringService, newModel ChatModelFactory, log logger.Logger) *CraftService {
	if newModel == nil {
		newModel = client.NewOpenAIChatModel
	}
	return &CraftService{
		config:   config,
		catalog:  catalog,
		keys:     keys,
		newModel: newModel,
		log:      log,
	}
}

func (s *CraftService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *CraftService) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

// Combine returns the element produced by combining first and second.
func (s *CraftService) Combine(first, second string) (string, error) {
	input := client.FormatInput(first, second)
	if input == "" {
		return "", errors.New("at least one element is required")
	}

	ctx := s.context()
	record, err := s.config.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("service: load config: %w", err)
	}

	apiKey, err := s.apiKey(record.Model)
	if err != nil {
		return "", err
	}

	cm, err := s.newModel(ctx, *record, apiKey)
	if err != nil {
		return "", fmt.Errorf("service: create chat model: %w", err)
	}

	result, err := client.NewCombiner(cm).Combine(ctx, *record, input)
	if err != nil {
		s.log.Error(fmt.Sprintf("craft: combine %q: %v", input, err))
		return "", fmt.Errorf("service: combine %q: %w", input, err)
	}
	s.log.Debug(fmt.Sprintf("craft: %s = %s", input, result))
	return result, nil
}

// apiKey looks up the key for the provider serving modelName. A missing key is
// not an error: local OpenAI-compatible servers usually need none.
func (s *CraftService) apiKey(modelName string) (string, error) {
	if s.keys == nil {
		return "", nil
	}
	provider := defaultProvider
	if s.catalog != nil {
		if p, ok := s.catalog.ProviderFor(modelName); ok {
			provider = p
		}
	}
	key, err := s.keys.GetApiKey(provider)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		s.log.Warning("craft: no API key stored for " + provider)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("service: read API key for %s: %w", provider, err)
	}
	return key, nil
}
