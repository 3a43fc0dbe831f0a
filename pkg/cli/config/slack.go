package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/muster/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the settings of the outcome notifier
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token used to post run outcomes",
			Category:    "Slack",
			Sources:     cli.EnvVars("MUSTER_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID receiving run outcomes",
			Category:    "Slack",
			Sources:     cli.EnvVars("MUSTER_SLACK_CHANNEL_ID"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional creates the outcome notifier, returns nil if Slack is not configured
func (s *Slack) ConfigureOptional(logger *slog.Logger) (interfaces.Notifier, error) {
	if s.OAuthToken == "" && s.ChannelID == "" {
		logger.Info("Slack not configured, run outcomes will only be logged")
		return nil, nil
	}
	if !s.IsConfigured() {
		return nil, goerr.New("both slack token and channel ID are required",
			goerr.V("has_token", s.OAuthToken != ""),
			goerr.V("channel_id", s.ChannelID))
	}

	logger.Info("Configuring Slack notifier", slog.String("channel_id", s.ChannelID))
	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID), nil
}

// IsConfigured checks if Slack is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel_id", s.ChannelID),
	)
}
