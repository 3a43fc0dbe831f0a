package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	incidentsCollection = "incidents"
	countersCollection  = "counters"

	// Document IDs
	incidentCounterDocID = "incident"

	// Field names
	fieldCurrentNumber = "current_number"
)

// Firestore implements IncidentStore with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore incident store
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on an invalid project or missing permissions
	_, err = client.Collection(incidentsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore incident store initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

func (f *Firestore) incidentDoc(id types.IncidentID) *firestore.DocumentRef {
	return f.client.Collection(incidentsCollection).Doc(id.String())
}

// CreateIncidentRecord assigns the next incident number and stores the
// record in one transaction
func (f *Firestore) CreateIncidentRecord(ctx context.Context, record *model.IncidentRecord) (*model.IncidentRecord, error) {
	if record == nil {
		return nil, goerr.New("incident record is nil")
	}

	counterDoc := f.client.Collection(countersCollection).Doc(incidentCounterDocID)
	var created *model.IncidentRecord

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var next types.IncidentID = 1

		doc, err := tx.Get(counterDoc)
		switch {
		case status.Code(err) == codes.NotFound:
		case err != nil:
			return goerr.Wrap(err, "failed to get counter document")
		default:
			current, err := doc.DataAt(fieldCurrentNumber)
			if err != nil {
				return goerr.Wrap(err, "failed to get current_number field")
			}
			switch v := current.(type) {
			case int64:
				next = types.IncidentID(v) + 1
			case int:
				next = types.IncidentID(v) + 1
			default:
				return goerr.New("unexpected type for current_number", goerr.V("type", v))
			}
		}

		rec := record.Clone()
		rec.ID = next
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now()
		}
		rec.UpdatedAt = rec.CreatedAt

		if err := tx.Set(counterDoc, map[string]any{fieldCurrentNumber: int(next)}); err != nil {
			return goerr.Wrap(err, "failed to update counter")
		}
		if err := tx.Create(f.incidentDoc(next), rec); err != nil {
			return goerr.Wrap(err, "failed to create incident document")
		}
		created = rec
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create incident record")
	}

	return created, nil
}

// GetIncidentRecord retrieves an incident record by ID
func (f *Firestore) GetIncidentRecord(ctx context.Context, id types.IncidentID) (*model.IncidentRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.incidentDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrIncidentNotFound, "failed to get incident record",
				goerr.V("incident_id", id), goerr.T(model.ErrTagNotFound))
		}
		return nil, goerr.Wrap(err, "failed to get incident record from firestore")
	}

	var record model.IncidentRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode incident record")
	}

	return &record, nil
}

// UpdateIncidentRecord applies the update in a transaction
func (f *Firestore) UpdateIncidentRecord(ctx context.Context, id types.IncidentID, update *model.IncidentUpdate) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if update == nil {
		return goerr.New("incident update is nil")
	}

	docRef := f.incidentDoc(id)
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(model.ErrIncidentNotFound, "incident record not found",
					goerr.V("incident_id", id), goerr.T(model.ErrTagNotFound))
			}
			return goerr.Wrap(err, "failed to get incident record")
		}

		var record model.IncidentRecord
		if err := doc.DataTo(&record); err != nil {
			return goerr.Wrap(err, "failed to decode incident record")
		}

		update.Apply(&record, time.Now())
		return tx.Set(docRef, &record)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update incident record", goerr.V("incident_id", id))
	}

	return nil
}

// DeleteIncidentRecord deletes an incident record. Deleting a missing record
// is not an error.
func (f *Firestore) DeleteIncidentRecord(ctx context.Context, id types.IncidentID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if _, err := f.incidentDoc(id).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete incident record", goerr.V("incident_id", id))
	}

	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.IncidentStore = (*Firestore)(nil) // Compile-time interface check
