// Package editor holds the settings editor session: a working copy of the
// stored configuration that is either committed back to the store in a single
// write or discarded.
//
// Removing an example only changes the working list. The store is written on
// Commit and never before, so Discard always leaves it untouched.
package editor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"elemental/internal/models"
)

var (
	ErrSessionClosed   = errors.New("editor session is closed")
	ErrExampleNotFound = errors.New("example not found")
)

// Store is the configuration store a session reads from and commits to.
type Store interface {
	Get(ctx context.Context) (*models.ConfigRecord, error)
	Set(ctx context.Context, record *models.ConfigRecord) error
}

// Defaults are the values ResetToDefaults restores.
type Defaults struct {
	Model     string
	BaseURL   string
	SystemMsg string
}

// Outcome tells how a session ended.
type Outcome int

const (
	Pending Outcome = iota
	Committed
	Discarded
)

func (o Outcome) String() string {
	switch o {
	case Committed:
		return "committed"
	case Discarded:
		return "discarded"
	default:
		return "pending"
	}
}

// Result is returned by Commit and Discard. Record is only set when the
// session was committed.
type Result struct {
	Outcome Outcome
	Record  *models.ConfigRecord
}

type Option func(*Session)

// WithDefaults overrides the values used by ResetToDefaults.
func WithDefaults(d Defaults) Option {
	return func(s *Session) { s.defaults = d }
}

// WithIDFunc overrides how example entry ids are generated.
func WithIDFunc(f func() string) Option {
	return func(s *Session) {
		if f != nil {
			s.newID = f
		}
	}
}

// Session is one open settings editor. It is owned by a single caller and is
// not safe for concurrent use.
type Session struct {
	store    Store
	defaults Defaults
	newID    func() string

	model     string
	baseURL   string
	systemMsg string
	examples  []models.ExampleEntry

	outcome Outcome
}

// Open loads the current configuration from store into a new session. Store
// errors are returned as is.
func Open(ctx context.Context, store Store, opts ...Option) (*Session, error) {
	s := &Session{
		store: store,
		defaults: Defaults{
			Model:     models.DefaultModel,
			BaseURL:   models.DefaultBaseURL,
			SystemMsg: models.DefaultSystemMsg,
		},
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	record, err := store.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.model = record.Model
	s.baseURL = record.BaseURL
	s.systemMsg = record.SystemMsg
	s.examples = make([]models.ExampleEntry, 0, len(record.Examples))
	for _, ex := range record.Examples {
		s.examples = append(s.examples, models.ExampleEntry{ID: s.newID(), ExamplePair: ex})
	}
	return s, nil
}

func (s *Session) Model() string     { return s.model }
func (s *Session) BaseURL() string   { return s.baseURL }
func (s *Session) SystemMsg() string { return s.systemMsg }

// Outcome reports whether the session is pending, committed or discarded.
func (s *Session) Outcome() Outcome { return s.outcome }

func (s *Session) SetModel(model string) error {
	if s.outcome != Pending {
		return ErrSessionClosed
	}
	s.model = model
	return nil
}

func (s *Session) SetBaseURL(baseURL string) error {
	if s.outcome != Pending {
		return ErrSessionClosed
	}
	s.baseURL = baseURL
	return nil
}

func (s *Session) SetSystemMsg(msg string) error {
	if s.outcome != Pending {
		return ErrSessionClosed
	}
	s.systemMsg = msg
	return nil
}

// ResetToDefaults restores model, base URL and system prompt. The example
// list is left alone.
func (s *Session) ResetToDefaults() error {
	if s.outcome != Pending {
		return ErrSessionClosed
	}
	s.model = s.defaults.Model
	s.baseURL = s.defaults.BaseURL
	s.systemMsg = s.defaults.SystemMsg
	return nil
}

// Record returns a snapshot of the working copy.
func (s *Session) Record() models.ConfigRecord {
	record := models.ConfigRecord{
		Model:     s.model,
		BaseURL:   s.baseURL,
		SystemMsg: s.systemMsg,
		Examples:  make([]models.ExamplePair, 0, len(s.examples)),
	}
	for _, entry := range s.examples {
		record.Examples = append(record.Examples, entry.ExamplePair)
	}
	return record
}

// Commit writes the working copy to the store with a single Set. If the store
// fails the error is returned as is and the session stays open, so the caller
// may retry.
func (s *Session) Commit(ctx context.Context) (Result, error) {
	if s.outcome != Pending {
		return Result{Outcome: s.outcome}, ErrSessionClosed
	}
	record := s.Record()
	if err := s.store.Set(ctx, &record); err != nil {
		return Result{Outcome: Pending}, err
	}
	s.outcome = Committed
	return Result{Outcome: Committed, Record: &record}, nil
}

// Discard ends the session without writing anything. Discarding an already
// discarded session is a no-op; a committed session stays committed.
func (s *Session) Discard() Result {
	if s.outcome == Pending {
		s.outcome = Discarded
	}
	return Result{Outcome: s.outcome}
}
