package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/secmon-lab/muster/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdReconcile() *cli.Command {
	var (
		be          backend
		incident    string
		requestPath string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "incident",
				Aliases:     []string{"i"},
				Usage:       "Incident ID of the workspace to update",
				Required:    true,
				Destination: &incident,
			},
			&cli.StringFlag{
				Name:        "request",
				Aliases:     []string{"r"},
				Usage:       "Reconciliation request file (YAML or JSON, - for stdin)",
				Required:    true,
				Destination: &requestPath,
			},
		},
		be.Flags(),
	)

	return &cli.Command{
		Name:  "reconcile",
		Usage: "Update the membership of an existing incident workspace",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := types.ParseIncidentID(incident)
			if err != nil {
				return err
			}
			ctxlog.From(ctx).Info("Reconciling incident workspace",
				"incident_id", id,
				"request", requestPath,
				"backend", be,
			)

			var in model.ReconcileInput
			if err := loadRequest(requestPath, &in); err != nil {
				return err
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}
			defer uc.Close()

			outcome, err := uc.reconcile.Reconcile(ctx, id, &in)
			if err != nil {
				return err
			}
			return printOutcome(os.Stdout, outcome)
		},
	}
}
