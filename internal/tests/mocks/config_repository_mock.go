package mocks

import (
	"context"

	"elemental/internal/models"
)

// ConfigRepositoryMock falls back to an in-memory record when a func is not set,
// and counts every call so tests can assert on store traffic.
type ConfigRepositoryMock struct {
	GetFunc           func(ctx context.Context) (*models.ConfigRecord, error)
	SetFunc           func(ctx context.Context, record *models.ConfigRecord) error
	RemoveExampleFunc func(ctx context.Context, pair models.ExamplePair) error

	Stored models.ConfigRecord

	GetCalls           int
	SetCalls           int
	RemoveExampleCalls int
}

// NewConfigRepositoryMock returns a mock whose store starts out holding record.
func NewConfigRepositoryMock(record models.ConfigRecord) *ConfigRepositoryMock {
	return &ConfigRepositoryMock{Stored: record.Clone()}
}

func (m *ConfigRepositoryMock) Get(ctx context.Context) (*models.ConfigRecord, error) {
	m.GetCalls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	record := m.Stored.Clone()
	return &record, nil
}

func (m *ConfigRepositoryMock) Set(ctx context.Context, record *models.ConfigRecord) error {
	m.SetCalls++
	if m.SetFunc != nil {
		return m.SetFunc(ctx, record)
	}
	m.Stored = record.Clone()
	return nil
}

func (m *ConfigRepositoryMock) RemoveExample(ctx context.Context, pair models.ExamplePair) error {
	m.RemoveExampleCalls++
	if m.RemoveExampleFunc != nil {
		return m.RemoveExampleFunc(ctx, pair)
	}
	for i, ex := range m.Stored.Examples {
		if ex == pair {
			m.Stored.Examples = append(m.Stored.Examples[:i:i], m.Stored.Examples[i+1:]...)
			break
		}
	}
	return nil
}
