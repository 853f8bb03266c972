package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/pagegate/pkg/cli/config"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/infra"
	"github.com/m-mizutani/pagegate/pkg/usecase"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
	"github.com/m-mizutani/pagegate/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func scanCommand() *cli.Command {
	var (
		github   config.GitHub
		bigQuery config.BigQuery
		account  string
		token    string
	)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"sc"},
		Usage:   "Scan all repositories of an account for enabled GitHub Pages sites and print them as JSON",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "account",
				Aliases:     []string{"a"},
				Usage:       "GitHub account to scan (must own the token)",
				Required:    true,
				Sources:     cli.EnvVars("PAGEGATE_GITHUB_ACCOUNT"),
				Destination: &account,
			},
			&cli.StringFlag{
				Name:        "token",
				Aliases:     []string{"t"},
				Usage:       "GitHub access token",
				Required:    true,
				Sources:     cli.EnvVars("PAGEGATE_GITHUB_TOKEN"),
				Destination: &token,
			},
		}, github.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runScan(ctx, account, token, &github, &bigQuery)
		},
	}
}

func runScan(ctx context.Context, account, token string, github *config.GitHub, bigQuery *config.BigQuery) error {
	logging.Default().Info("starting scan",
		slog.String("account", account),
		slog.Any("github", github),
		slog.Any("bigquery", bigQuery),
	)

	pagesClient, err := github.NewPagesClient()
	if err != nil {
		return err
	}
	sessionSvc, err := github.NewSessionService()
	if err != nil {
		return err
	}

	identity, err := sessionSvc.CurrentIdentity(ctx, types.SessionToken(token))
	if err != nil {
		return goerr.Wrap(err, "failed to resolve token owner")
	}

	infraOptions := []infra.Option{
		infra.WithGitHubPages(pagesClient),
	}
	if bqClient, err := bigQuery.NewClient(ctx); err != nil {
		return goerr.Wrap(err, "failed to create BigQuery client")
	} else if bqClient != nil {
		defer safe.Close(bqClient)
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	uc := usecase.New(infra.New(infraOptions...))

	sites, err := uc.ListPagesSites(ctx, identity, types.AccountName(account), &model.ListPagesSitesInput{
		ProviderToken: types.ProviderToken(token),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to scan repositories")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sites); err != nil {
		return goerr.Wrap(err, "failed to encode scan result")
	}

	return nil
}
