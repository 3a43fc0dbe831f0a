package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/secmon-lab/muster/pkg/repository"
)

func newRecord(name string) *model.IncidentRecord {
	commander := model.PersonRef{ID: "ic-1", DisplayName: "Commander", Email: "ic@example.com"}
	return &model.IncidentRecord{
		Fields:    model.IncidentFields{Name: name, Type: "Flood", Severity: "High"},
		Commander: commander,
		Roles: model.RoleAssignments{
			{Role: "Logistics", Users: []model.PersonRef{{ID: "u-1", DisplayName: "User 1"}}},
		},
		CreatedBy:  commander,
		ModifiedBy: commander,
		CreatedAt:  time.Now(),
	}
}

func testIncidentStore(t *testing.T, newStore func(t *testing.T) interfaces.IncidentStore) {
	t.Run("CreateIncidentRecord assigns increasing ids", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		ctx := context.Background()

		first, err := store.CreateIncidentRecord(ctx, newRecord("first"))
		gt.NoError(t, err).Required()
		second, err := store.CreateIncidentRecord(ctx, newRecord("second"))
		gt.NoError(t, err).Required()

		gt.True(t, first.ID > 0)
		gt.True(t, second.ID > first.ID)
	})

	t.Run("GetIncidentRecord returns stored fields", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		ctx := context.Background()

		created, err := store.CreateIncidentRecord(ctx, newRecord("get"))
		gt.NoError(t, err).Required()

		got, err := store.GetIncidentRecord(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, "get", got.Fields.Name)
		gt.Equal(t, types.DirectoryID("ic-1"), got.Commander.ID)
		gt.Equal(t, 1, len(got.Roles))
		gt.Equal(t, "Logistics", got.Roles[0].Role)
		gt.False(t, got.HasWorkspace())
	})

	t.Run("GetIncidentRecord not found", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		_, err := store.GetIncidentRecord(context.Background(), types.IncidentID(999999999))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrIncidentNotFound))
		gt.True(t, model.IsNotFound(err))
	})

	t.Run("UpdateIncidentRecord applies set fields only", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		ctx := context.Background()

		created, err := store.CreateIncidentRecord(ctx, newRecord("update"))
		gt.NoError(t, err).Required()

		groupID := types.GroupID("group-1")
		webURL := "https://example.com/team"
		reason := "commander handover"
		gt.NoError(t, store.UpdateIncidentRecord(ctx, created.ID, &model.IncidentUpdate{
			TeamGroupID:     &groupID,
			TeamWebURL:      &webURL,
			ReasonForUpdate: &reason,
		})).Required()

		got, err := store.GetIncidentRecord(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.True(t, got.HasWorkspace())
		gt.Equal(t, groupID, got.TeamGroupID)
		gt.Equal(t, webURL, got.TeamWebURL)
		gt.Equal(t, reason, got.ReasonForUpdate)
		gt.Equal(t, "update", got.Fields.Name)
		gt.Equal(t, 1, len(got.Roles))
	})

	t.Run("UpdateIncidentRecord not found", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		reason := "x"
		err := store.UpdateIncidentRecord(context.Background(), types.IncidentID(999999999), &model.IncidentUpdate{ReasonForUpdate: &reason})
		gt.True(t, model.IsNotFound(err))
	})

	t.Run("DeleteIncidentRecord", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()
		ctx := context.Background()

		created, err := store.CreateIncidentRecord(ctx, newRecord("delete"))
		gt.NoError(t, err).Required()

		gt.NoError(t, store.DeleteIncidentRecord(ctx, created.ID))
		_, err = store.GetIncidentRecord(ctx, created.ID)
		gt.True(t, model.IsNotFound(err))

		// Deleting twice is fine
		gt.NoError(t, store.DeleteIncidentRecord(ctx, created.ID))
	})

	t.Run("invalid id is rejected", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		_, err := store.GetIncidentRecord(context.Background(), 0)
		gt.Error(t, err)
	})
}

func TestMemoryIncidentStore(t *testing.T) {
	testIncidentStore(t, func(t *testing.T) interfaces.IncidentStore {
		return repository.NewMemory()
	})
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := repository.NewMemory()
	ctx := context.Background()

	created, err := store.CreateIncidentRecord(ctx, newRecord("copy"))
	gt.NoError(t, err).Required()
	created.Roles[0].Role = "changed"

	got, err := store.GetIncidentRecord(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, "Logistics", got.Roles[0].Role)
	gt.Equal(t, 1, store.Count())
}

func TestFirestoreIncidentStore(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testIncidentStore(t, func(t *testing.T) interfaces.IncidentStore {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		store, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return store
	})
}
