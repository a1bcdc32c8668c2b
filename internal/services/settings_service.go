package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"elemental/internal/editor"
	"elemental/internal/events"
	"elemental/internal/models"
	"elemental/internal/repositories"
)

var ErrSessionNotFound = errors.New("settings session not found")

// SettingsService exposes settings editor sessions to the frontend. Each
// session lives until it is committed or discarded.
type SettingsService interface {
	Startup(ctx context.Context)
	GetConfig() (*models.ConfigRecord, error)
	OpenSession() (*models.SettingsSessionView, error)
	GetSession(sessionID string) (*models.SettingsSessionView, error)
	SetModel(sessionID, model string) (*models.SettingsSessionView, error)
	SetBaseURL(sessionID, baseURL string) (*models.SettingsSessionView, error)
	SetSystemMsg(sessionID, systemMsg string) (*models.SettingsSessionView, error)
	ResetToDefaults(sessionID string) (*models.SettingsSessionView, error)
	AddExample(sessionID, fromStr, resultStr string) (*models.ExampleEntry, error)
	UpdateExample(sessionID, exampleID, fromStr, resultStr string) error
	RemoveExample(sessionID, exampleID string) error
	Commit(sessionID string) (*models.ConfigRecord, error)
	Discard(sessionID string) error
	RemoveStoredExample(fromStr, resultStr string) error
}

type settingsService struct {
	config  repositories.ConfigRepository
	catalog ModelCatalog
	log     logger.Logger
	ctx     context.Context

	mu       sync.Mutex
	sessions map[string]*editor.Session
}

func NewSettingsService(config repositories.ConfigRepository, catalog ModelCatalog, log logger.Logger) SettingsService {
	return &settingsService{
		config:   config,
		catalog:  catalog,
		log:      log,
		sessions: make(map[string]*editor.Session),
	}
}

func (s *settingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *settingsService) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *settingsService) GetConfig() (*models.ConfigRecord, error) {
	return s.config.Get(s.context())
}

func (s *settingsService) OpenSession() (*models.SettingsSessionView, error) {
	session, err := editor.Open(s.context(), s.config)
	if err != nil {
		s.log.Error(fmt.Sprintf("settings: open session: %v", err))
		return nil, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	s.log.Debug("settings: opened session " + id)
	return s.view(id, session), nil
}

func (s *settingsService) GetSession(sessionID string) (*models.SettingsSessionView, error) {
	return s.withSession(sessionID, func(*editor.Session) error { return nil })
}

func (s *settingsService) SetModel(sessionID, model string) (*models.SettingsSessionView, error) {
	return s.withSession(sessionID, func(session *editor.Session) error {
		return session.SetModel(model)
	})
}

func (s *settingsService) SetBaseURL(sessionID, baseURL string) (*models.SettingsSessionView, error) {
	return s.withSession(sessionID, func(session *editor.Session) error {
		return session.SetBaseURL(baseURL)
	})
}

func (s *settingsService) SetSystemMsg(sessionID, systemMsg string) (*models.SettingsSessionView, error) {
	return s.withSession(sessionID, func(session *editor.Session) error {
		return session.SetSystemMsg(systemMsg)
	})
}

func (s *settingsService) ResetToDefaults(sessionID string) (*models.SettingsSessionView, error) {
	return s.withSession(sessionID, func(session *editor.Session) error {
		return session.ResetToDefaults()
	})
}

func (s *settingsService) AddExample(sessionID, fromStr, resultStr string) (*models.ExampleEntry, error) {
	var entry models.ExampleEntry
	_, err := s.withSession(sessionID, func(session *editor.Session) error {
		var err error
		entry, err = session.AddExample(fromStr, resultStr)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *settingsService) UpdateExample(sessionID, exampleID, fromStr, resultStr string) error {
	_, err := s.withSession(sessionID, func(session *editor.Session) error {
		return session.UpdateExample(exampleID, fromStr, resultStr)
	})
	return err
}

func (s *settingsService) RemoveExample(sessionID, exampleID string) error {
	_, err := s.withSession(sessionID, func(session *editor.Session) error {
		return session.RemoveExample(exampleID)
	})
	return err
}

// Commit writes the session's working copy. On failure the session stays
// open so the frontend can retry or discard.
func (s *settingsService) Commit(sessionID string) (*models.ConfigRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if model := session.Model(); s.catalog != nil && !s.catalog.IsKnown(model) {
		s.log.Warning(fmt.Sprintf("settings: saving unknown model %q", model))
	}

	res, err := session.Commit(s.context())
	if err != nil {
		s.log.Error(fmt.Sprintf("settings: commit session %s: %v", sessionID, err))
		return nil, err
	}
	delete(s.sessions, sessionID)
	s.log.Info("settings: saved configuration")

	evt := events.NewSettingsEvent(events.EventSettingsSaved, sessionID)
	evt.Model = res.Record.Model
	evt.Examples = len(res.Record.Examples)
	events.Emit(s.context(), evt)
	return res.Record, nil
}

func (s *settingsService) Discard(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	session.Discard()
	delete(s.sessions, sessionID)
	s.log.Debug("settings: discarded session " + sessionID)
	events.Emit(s.context(), events.NewSettingsEvent(events.EventSettingsDiscarded, sessionID))
	return nil
}

// RemoveStoredExample deletes the first matching example directly from the
// store, outside of any session.
func (s *settingsService) RemoveStoredExample(fromStr, resultStr string) error {
	pair := models.ExamplePair{FromStr: fromStr, ResultStr: resultStr}
	if err := s.config.RemoveExample(s.context(), pair); err != nil {
		s.log.Error(fmt.Sprintf("settings: remove stored example: %v", err))
		return err
	}
	events.Emit(s.context(), events.NewSettingsEvent(events.EventExampleRemoved, ""))
	return nil
}

func (s *settingsService) withSession(sessionID string, fn func(*editor.Session) error) (*models.SettingsSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	return s.view(sessionID, session), nil
}

func (s *settingsService) view(id string, session *editor.Session) *models.SettingsSessionView {
	return &models.SettingsSessionView{
		ID:         id,
		Model:      session.Model(),
		KnownModel: s.catalog == nil || s.catalog.IsKnown(session.Model()),
		BaseURL:    session.BaseURL(),
		SystemMsg:  session.SystemMsg(),
		Examples:   session.Examples(),
	}
}
