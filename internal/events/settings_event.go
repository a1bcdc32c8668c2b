package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventSettingsSaved     EventType = "saved"
	EventExampleRemoved    EventType = "example-removed"
	EventSettingsDiscarded EventType = "discarded"
)

// SettingsEventName is the frontend event channel for configuration changes.
const SettingsEventName = "events:settings"

// SettingsEvent tells the frontend that the stored configuration changed.
type SettingsEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId,omitempty"`
	Model     string    `json:"model,omitempty"`
	Examples  int       `json:"examples"`
	Timestamp time.Time `json:"timestamp"`
}

func NewSettingsEvent(eventType EventType, sessionID string) SettingsEvent {
	return SettingsEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now(),
	}
}
