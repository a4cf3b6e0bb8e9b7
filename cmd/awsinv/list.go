package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/rs/zerolog/log"

	"github.com/awsinv/awsinv/internal/awsapi"
	"github.com/awsinv/awsinv/inventory"
	"github.com/awsinv/awsinv/render"
)

// ListCommand implements the 'awsinv list' command.
type ListCommand struct {
	Service string
	Region  string
	Profile string
	Output  string
}

// Run loads authenticated clients, performs the one listing, and
// renders the outcome: tables on stdout, failures on stderr.
func (cmd *ListCommand) Run(ctx context.Context) error {
	clients, err := cmd.loadClients(ctx)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	inv := inventory.New(clients, log.Logger)
	result, err := inv.List(ctx, cmd.Service, cmd.Region)
	if err != nil {
		var lerr *inventory.Error
		if errors.As(err, &lerr) {
			render.Error(os.Stderr, lerr)
		}
		return err
	}

	switch cmd.Output {
	case "json":
		return render.JSON(os.Stdout, result)
	case "csv":
		return render.CSV(os.Stdout, result)
	default:
		return render.Table(os.Stdout, result)
	}
}

// loadClients resolves shared AWS config (env, config files, SSO) and
// builds one client per listable service from it.
func (cmd *ListCommand) loadClients(ctx context.Context) (awsapi.Clients, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cmd.Region),
	}
	if cmd.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cmd.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awsapi.Clients{}, err
	}
	return awsapi.NewClients(cfg), nil
}
