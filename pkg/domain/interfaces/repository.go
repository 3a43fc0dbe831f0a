package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . IncidentStore

import (
	"context"

	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// IncidentStore persists incident records
type IncidentStore interface {
	// CreateIncidentRecord assigns the next incident id and stores the record
	CreateIncidentRecord(ctx context.Context, record *model.IncidentRecord) (*model.IncidentRecord, error)
	GetIncidentRecord(ctx context.Context, id types.IncidentID) (*model.IncidentRecord, error)
	UpdateIncidentRecord(ctx context.Context, id types.IncidentID, update *model.IncidentUpdate) error
	DeleteIncidentRecord(ctx context.Context, id types.IncidentID) error

	Close() error
}
