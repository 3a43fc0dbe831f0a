package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/muster/pkg/cli/config"
	"github.com/secmon-lab/muster/pkg/domain/model"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "workspace.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadWorkspaceFromFile(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
team_name:
  prefix: OPS
  fields: [prefix, incident_name]
site_settle_delay: 30s
private_after_provision: true
`)
		cfg, err := config.LoadWorkspaceFromFile(path)
		gt.NoError(t, err).Required()

		gt.Equal(t, "OPS", cfg.TeamName.Prefix)
		gt.Equal(t, 2, len(cfg.TeamName.Fields))
		gt.Equal(t, 30*time.Second, cfg.SiteSettleDelay)
		gt.True(t, cfg.PrivateAfterProvision)
		gt.Equal(t, model.DefaultWorkspaceConfig().DefaultChannels, cfg.DefaultChannels)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		cfg, err := config.LoadWorkspaceFromFile(writeConfig(t, ""))
		gt.NoError(t, err).Required()
		gt.Equal(t, model.DefaultWorkspaceConfig().MailNicknamePrefix, cfg.MailNicknamePrefix)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.LoadWorkspaceFromFile(writeConfig(t, "unknown_key: 1\n"))
		gt.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := config.LoadWorkspaceFromFile(writeConfig(t, "default_channels: []\n"))
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadWorkspaceFromFile(filepath.Join(t.TempDir(), "none.yaml"))
		gt.Error(t, err)
	})
}

func TestWorkspaceConfigureWithoutPath(t *testing.T) {
	var w config.Workspace
	cfg, err := w.Configure()
	gt.NoError(t, err).Required()
	gt.Equal(t, model.DefaultWorkspaceConfig().CommanderRole, cfg.CommanderRole)
}

func TestLoggerValidate(t *testing.T) {
	l := config.Logger{Level: "info", Format: "json"}
	gt.NoError(t, l.Validate())

	l.Level = "verbose"
	gt.Error(t, l.Validate())
}
