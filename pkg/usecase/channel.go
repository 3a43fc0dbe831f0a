package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

// ChannelProvisioner creates workspace channels independently of each other
type ChannelProvisioner struct {
	directory interfaces.DirectoryService
	policy    RetryPolicy
}

// NewChannelProvisioner creates a ChannelProvisioner with the given retry budget
func NewChannelProvisioner(directory interfaces.DirectoryService, policy RetryPolicy) *ChannelProvisioner {
	return &ChannelProvisioner{
		directory: directory,
		policy:    policy,
	}
}

// Provision creates each channel through the retry budget. A failed channel
// does not stop the remaining ones; failures are collected in the result.
func (p *ChannelProvisioner) Provision(ctx context.Context, teamID types.TeamID, names []string) *model.ChannelResult {
	logger := ctxlog.From(ctx)
	result := &model.ChannelResult{}

	for _, name := range names {
		attempt := Execute(ctx, p.policy, Classifier[*model.Channel]{}, func(ctx context.Context) (*model.Channel, error) {
			return p.directory.CreateChannel(ctx, teamID, name)
		})

		outcome := model.ChannelOutcome{
			Name:     name,
			Attempts: attempt.Attempts,
			Channel:  attempt.Value,
		}

		if !attempt.Succeeded() {
			outcome.Err = goerr.Wrap(attempt.Err, "failed to create channel",
				goerr.V("channel", name),
				goerr.V("attempts", attempt.Attempts))
			logger.Warn("Channel creation failed",
				"channel", name,
				"attempts", attempt.Attempts,
				"error", attempt.Err)
			result.Failed = append(result.Failed, outcome)
			continue
		}

		outcome.Created = true
		logger.Info("Channel created", "channel", name, "attempts", attempt.Attempts)
		result.Succeeded = append(result.Succeeded, outcome)
	}

	return result
}
