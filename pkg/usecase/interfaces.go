package usecase

import (
	"context"

	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// ProvisionUseCase creates incident workspaces
type ProvisionUseCase interface {
	// Provision validates the input and runs the provisioning pipeline
	Provision(ctx context.Context, in *model.ProvisionInput) (*model.RunOutcome, error)
}

// ReconcileUseCase updates the membership of existing workspaces
type ReconcileUseCase interface {
	// Reconcile validates the input and runs the reconciliation pipeline
	Reconcile(ctx context.Context, id types.IncidentID, in *model.ReconcileInput) (*model.RunOutcome, error)
}

var (
	_ ProvisionUseCase = (*Provisioning)(nil)
	_ ReconcileUseCase = (*Reconciliation)(nil)
)
