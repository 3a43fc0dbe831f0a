package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/cli/config"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/usecase"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// backend holds the settings every command needs to reach the directory
// and the incident store
type backend struct {
	graph     config.Graph
	firestore config.Firestore
	slack     config.Slack
	workspace config.Workspace
}

func (b *backend) Flags() []cli.Flag {
	return joinFlags(
		b.graph.Flags(),
		b.firestore.Flags(),
		b.slack.Flags(),
		b.workspace.Flags(),
	)
}

func (b backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("graph", b.graph),
		slog.Any("firestore", b.firestore),
		slog.Any("slack", b.slack),
		slog.Any("workspace", b.workspace),
	)
}

// useCases bundles the configured pipelines. Close releases the store.
type useCases struct {
	provision *usecase.Provisioning
	reconcile *usecase.Reconciliation
	store     interfaces.IncidentStore
}

func (u *useCases) Close() {
	if err := u.store.Close(); err != nil {
		slog.Default().Warn("Failed to close incident store", "error", err)
	}
}

func (b *backend) configure(ctx context.Context) (*useCases, error) {
	logger := ctxlog.From(ctx)

	workspace, err := b.workspace.Configure()
	if err != nil {
		return nil, err
	}

	dir, err := b.graph.Configure(ctx)
	if err != nil {
		return nil, err
	}

	notifier, err := b.slack.ConfigureOptional(logger)
	if err != nil {
		return nil, err
	}

	store, err := b.firestore.Configure(ctx)
	if err != nil {
		return nil, err
	}

	var opts []usecase.RunOption
	if notifier != nil {
		opts = append(opts, usecase.WithNotifier(notifier))
	}

	return &useCases{
		provision: usecase.NewProvisioning(dir, store, workspace, opts...),
		reconcile: usecase.NewReconciliation(dir, store, workspace, opts...),
		store:     store,
	}, nil
}

// loadRequest decodes a request file. Files with a .json extension are read
// as JSON, everything else as YAML.
func loadRequest(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to read request file", goerr.V("path", path))
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return goerr.Wrap(err, "failed to parse JSON request", goerr.V("path", path))
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "failed to parse YAML request", goerr.V("path", path))
	}
	return nil
}

// printOutcome writes the outcome as indented JSON and returns an error when
// the run failed so that the process exits non-zero
func printOutcome(w io.Writer, outcome *model.RunOutcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		return goerr.Wrap(err, "failed to encode outcome")
	}
	if !outcome.Success {
		return goerr.New("run failed", goerr.V("error_message", outcome.ErrorMessage))
	}
	return nil
}
