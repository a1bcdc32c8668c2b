package models

// SettingsSessionView is what the frontend sees of an open settings editor.
type SettingsSessionView struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	KnownModel bool           `json:"knownModel"`
	BaseURL    string         `json:"baseUrl"`
	SystemMsg  string         `json:"systemMsg"`
	Examples   []ExampleEntry `json:"examples"`
}
