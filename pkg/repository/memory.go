package repository

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// Memory implements IncidentStore with in-memory storage
type Memory struct {
	mu              sync.RWMutex
	incidents       map[types.IncidentID]*model.IncidentRecord
	incidentCounter types.IncidentID
}

// NewMemory creates a new memory incident store
func NewMemory() *Memory {
	return &Memory{
		incidents: make(map[types.IncidentID]*model.IncidentRecord),
	}
}

// CreateIncidentRecord assigns the next incident number and stores a copy
func (m *Memory) CreateIncidentRecord(ctx context.Context, record *model.IncidentRecord) (*model.IncidentRecord, error) {
	if record == nil {
		return nil, goerr.New("incident record is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.incidentCounter++
	rec := record.Clone()
	rec.ID = m.incidentCounter
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.UpdatedAt = rec.CreatedAt
	m.incidents[rec.ID] = rec

	return rec.Clone(), nil
}

// GetIncidentRecord retrieves a copy of an incident record
func (m *Memory) GetIncidentRecord(ctx context.Context, id types.IncidentID) (*model.IncidentRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.incidents[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrIncidentNotFound, "failed to get incident record",
			goerr.V("incident_id", id), goerr.T(model.ErrTagNotFound))
	}
	return rec.Clone(), nil
}

// UpdateIncidentRecord applies the update to the stored record
func (m *Memory) UpdateIncidentRecord(ctx context.Context, id types.IncidentID, update *model.IncidentUpdate) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if update == nil {
		return goerr.New("incident update is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.incidents[id]
	if !exists {
		return goerr.Wrap(model.ErrIncidentNotFound, "incident record not found",
			goerr.V("incident_id", id), goerr.T(model.ErrTagNotFound))
	}
	update.Apply(rec, time.Now())
	return nil
}

// DeleteIncidentRecord deletes an incident record. Deleting a missing record
// is not an error.
func (m *Memory) DeleteIncidentRecord(ctx context.Context, id types.IncidentID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.incidents, id)
	return nil
}

// Count returns the number of stored records
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.incidents)
}

// Close is a no-op for memory store
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.IncidentStore = (*Memory)(nil) // Compile-time interface check
