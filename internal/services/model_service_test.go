package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elemental/internal/models"
	"elemental/internal/services"
)

func TestModelCatalogService_ListModelsKeepsCatalogOrder(t *testing.T) {
	catalog := newCatalog(t)

	list, err := catalog.ListModels()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "gpt-4", list[0].Name)
	assert.Equal(t, "gpt-4o-mini", list[1].Name)
	assert.Equal(t, "gpt-4o-mini", list[1].DisplayName)
	assert.Equal(t, models.LLMModel{Name: "llama3", DisplayName: "Llama 3", ProviderID: "local", ProviderName: "Local"}, list[2])
}

func TestModelCatalogService_Groups(t *testing.T) {
	groups, err := newCatalog(t).ListModelGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "openai", groups[0].ProviderID)
	assert.Len(t, groups[0].Models, 2)
	assert.Equal(t, "Local", groups[1].ProviderName)
	assert.Len(t, groups[1].Models, 1)
}

func TestModelCatalogService_IsKnown(t *testing.T) {
	catalog := newCatalog(t)

	assert.True(t, catalog.IsKnown("gpt-4"))
	assert.True(t, catalog.IsKnown(" llama3 "))
	assert.False(t, catalog.IsKnown("gpt-5"))

	provider, ok := catalog.ProviderFor("llama3")
	assert.True(t, ok)
	assert.Equal(t, "local", provider)
}

func TestModelCatalogService_EmbeddedCatalogHasDefaultModel(t *testing.T) {
	catalog := services.NewModelCatalogService()
	require.NoError(t, catalog.Startup(context.Background()))
	assert.True(t, catalog.IsKnown(models.DefaultModel))
}

func TestModelCatalogService_BadJSON(t *testing.T) {
	catalog := services.NewModelCatalogServiceFromJSON([]byte("{"))
	assert.Error(t, catalog.Startup(context.Background()))
}

func TestModelCatalogService_DuplicateModel(t *testing.T) {
	catalog := services.NewModelCatalogServiceFromJSON([]byte(`{"providers":[
		{"id":"a","models":[{"name":"m"}]},
		{"id":"b","models":[{"name":"m"}]}]}`))
	assert.Error(t, catalog.Startup(context.Background()))
}
