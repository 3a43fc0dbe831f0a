package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/muster/pkg/domain/interfaces"
	"github.com/secmon-lab/muster/pkg/service/directory"
	"github.com/secmon-lab/muster/pkg/service/graph"
	"github.com/urfave/cli/v3"
)

// Graph holds the directory service configuration
type Graph struct {
	TenantID      string
	ClientID      string
	ClientSecret  string
	BaseURL       string
	AuthorityURL  string
	SenderAddress string
}

// Flags returns CLI flags for Graph configuration
func (g *Graph) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "graph-tenant-id",
			Usage:       "Directory tenant ID",
			Category:    "Graph",
			Sources:     cli.EnvVars("MUSTER_GRAPH_TENANT_ID"),
			Destination: &g.TenantID,
		},
		&cli.StringFlag{
			Name:        "graph-client-id",
			Usage:       "Application (client) ID",
			Category:    "Graph",
			Sources:     cli.EnvVars("MUSTER_GRAPH_CLIENT_ID"),
			Destination: &g.ClientID,
		},
		&cli.StringFlag{
			Name:        "graph-client-secret",
			Usage:       "Application client secret",
			Category:    "Graph",
			Sources:     cli.EnvVars("MUSTER_GRAPH_CLIENT_SECRET"),
			Destination: &g.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "graph-base-url",
			Usage:       "API root, override for sovereign clouds",
			Category:    "Graph",
			Value:       "https://graph.microsoft.com/v1.0",
			Sources:     cli.EnvVars("MUSTER_GRAPH_BASE_URL"),
			Destination: &g.BaseURL,
		},
		&cli.StringFlag{
			Name:        "graph-authority-url",
			Usage:       "Token issuer root, override for sovereign clouds",
			Category:    "Graph",
			Value:       "https://login.microsoftonline.com",
			Sources:     cli.EnvVars("MUSTER_GRAPH_AUTHORITY_URL"),
			Destination: &g.AuthorityURL,
		},
		&cli.StringFlag{
			Name:        "graph-sender-address",
			Usage:       "Mailbox used to send guest notifications",
			Category:    "Graph",
			Sources:     cli.EnvVars("MUSTER_GRAPH_SENDER_ADDRESS"),
			Destination: &g.SenderAddress,
		},
	}
}

// Configure creates the directory service. Without a tenant the in-memory
// directory is used.
func (g *Graph) Configure(ctx context.Context) (interfaces.DirectoryService, error) {
	if g.TenantID == "" {
		ctxlog.From(ctx).Warn("Using in-memory directory instead of Graph. No real workspace will be created")
		return directory.NewMemory(), nil
	}

	client, err := graph.New(ctx, graph.Config{
		TenantID:      g.TenantID,
		ClientID:      g.ClientID,
		ClientSecret:  g.ClientSecret,
		BaseURL:       g.BaseURL,
		AuthorityURL:  g.AuthorityURL,
		SenderAddress: g.SenderAddress,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init graph client",
			goerr.V("tenant_id", g.TenantID),
			goerr.V("base_url", g.BaseURL),
		)
	}
	return client, nil
}

// LogValue returns structured log value
func (g Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenant_id", g.TenantID),
		slog.String("client_id", g.ClientID),
		slog.Bool("has_client_secret", g.ClientSecret != ""),
		slog.String("base_url", g.BaseURL),
		slog.String("sender_address", g.SenderAddress),
	)
}
