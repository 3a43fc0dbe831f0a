package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/muster/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdProvision() *cli.Command {
	var (
		be          backend
		requestPath string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "request",
				Aliases:     []string{"r"},
				Usage:       "Provisioning request file (YAML or JSON, - for stdin)",
				Required:    true,
				Destination: &requestPath,
			},
		},
		be.Flags(),
	)

	return &cli.Command{
		Name:  "provision",
		Usage: "Create an incident workspace once and print the outcome",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctxlog.From(ctx).Info("Provisioning incident workspace",
				"request", requestPath,
				"backend", be,
			)

			var in model.ProvisionInput
			if err := loadRequest(requestPath, &in); err != nil {
				return err
			}

			uc, err := be.configure(ctx)
			if err != nil {
				return err
			}
			defer uc.Close()

			outcome, err := uc.provision.Provision(ctx, &in)
			if err != nil {
				return err
			}
			return printOutcome(os.Stdout, outcome)
		},
	}
}
