package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts run outcomes to an operations channel
type Notifier struct {
	service   *Service
	channelID string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier posting to channelID
func NewNotifier(service *Service, channelID string) *Notifier {
	return &Notifier{
		service:   service,
		channelID: channelID,
	}
}

// NotifyOutcome posts the outcome of a run
func (n *Notifier) NotifyOutcome(ctx context.Context, event *model.OutcomeEvent) error {
	if event == nil || event.Outcome == nil {
		return goerr.New("outcome event is empty")
	}

	_, _, err := n.service.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(outcomeTitle(event)+": "+event.IncidentName, false),
		slack.MsgOptionBlocks(BuildOutcomeBlocks(event)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify outcome", goerr.V("kind", event.Kind))
	}
	return nil
}
