package models

// LLMModel represents a single selectable model in the settings model list.
type LLMModel struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
}

// LLMModelGroup groups models by their provider for presentation.
type LLMModelGroup struct {
	ProviderID   string     `json:"providerId"`
	ProviderName string     `json:"providerName"`
	Models       []LLMModel `json:"models"`
}
