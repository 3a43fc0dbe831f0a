package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
)

func TestDefaultWorkspaceConfigIsValid(t *testing.T) {
	gt.NoError(t, model.DefaultWorkspaceConfig().Validate())
}

func TestWorkspaceConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *model.WorkspaceConfig)
	}{
		{"long prefix", func(c *model.WorkspaceConfig) { c.TeamName.Prefix = "ABCDEFGHIJK" }},
		{"unknown field", func(c *model.WorkspaceConfig) { c.TeamName.Fields = []model.TeamNameField{"severity"} }},
		{"duplicate field", func(c *model.WorkspaceConfig) {
			c.TeamName.Fields = []model.TeamNameField{model.TeamNameFieldPrefix, model.TeamNameFieldPrefix}
		}},
		{"no default channels", func(c *model.WorkspaceConfig) { c.DefaultChannels = nil }},
		{"duplicate default channel", func(c *model.WorkspaceConfig) { c.DefaultChannels = []string{"A", "A"} }},
		{"same commander roles", func(c *model.WorkspaceConfig) { c.SecondaryCommanderRole = c.CommanderRole }},
		{"missing mail nickname prefix", func(c *model.WorkspaceConfig) { c.MailNicknamePrefix = "" }},
		{"negative delay", func(c *model.WorkspaceConfig) { c.SiteSettleDelay = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultWorkspaceConfig()
			tt.modify(cfg)
			gt.Error(t, cfg.Validate())
		})
	}
}

func TestTeamDisplayName(t *testing.T) {
	fields := model.IncidentFields{
		Name:      "Flood",
		Type:      "Natural Disaster",
		StartTime: time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
	}

	t.Run("default field order", func(t *testing.T) {
		cfg := model.DefaultWorkspaceConfig()
		gt.Equal(t, "12-EOC-Flood-Natural Disaster-05Mar2024", cfg.TeamDisplayName(types.IncidentID(12), fields))
	})

	t.Run("empty components are skipped", func(t *testing.T) {
		cfg := model.DefaultWorkspaceConfig()
		cfg.TeamName.Prefix = ""
		gt.Equal(t, "3-Flood-Natural Disaster", cfg.TeamDisplayName(types.IncidentID(3), model.IncidentFields{
			Name: "Flood",
			Type: "Natural Disaster",
		}))
	})

	t.Run("incident type is truncated", func(t *testing.T) {
		cfg := model.DefaultWorkspaceConfig()
		cfg.TeamName.Fields = []model.TeamNameField{model.TeamNameFieldIncidentType}
		long := model.IncidentFields{Type: strings.Repeat("x", 200)}
		gt.Equal(t, "1-"+strings.Repeat("x", 170), cfg.TeamDisplayName(types.IncidentID(1), long))
	})
}

func TestMailNickname(t *testing.T) {
	cfg := model.DefaultWorkspaceConfig()
	gt.Equal(t, "TEOC_42", cfg.MailNickname(types.IncidentID(42)))
}
