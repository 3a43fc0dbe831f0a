package config

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Workspace points to the optional workspace settings file
type Workspace struct {
	ConfigPath string
}

// Flags returns CLI flags for workspace configuration
func (w *Workspace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workspace-config",
			Aliases:     []string{"w"},
			Usage:       "Path to the workspace settings YAML file",
			Category:    "Workspace",
			Sources:     cli.EnvVars("MUSTER_WORKSPACE_CONFIG"),
			Destination: &w.ConfigPath,
		},
	}
}

// Configure returns the built-in settings overlaid with the configured file
func (w *Workspace) Configure() (*model.WorkspaceConfig, error) {
	if w.ConfigPath == "" {
		return model.DefaultWorkspaceConfig(), nil
	}
	return LoadWorkspaceFromFile(w.ConfigPath)
}

// LoadWorkspaceFromFile loads workspace settings from a YAML file. Keys that
// are absent keep their default values.
func LoadWorkspaceFromFile(path string) (*model.WorkspaceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	cfg := model.DefaultWorkspaceConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return cfg, nil
}

// LogValue returns structured log value
func (w Workspace) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_path", w.ConfigPath),
	)
}
