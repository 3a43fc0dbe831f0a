package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/secmon-lab/muster/pkg/domain/model"
)

// Notifier reports the outcome of a run to operators
type Notifier interface {
	NotifyOutcome(ctx context.Context, event *model.OutcomeEvent) error
}
