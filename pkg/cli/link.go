package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/pagegate/pkg/cli/config"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func linkCommand() *cli.Command {
	var (
		github    config.GitHub
		firestore config.Firestore
		account   string
		token     string
	)

	return &cli.Command{
		Name:  "link",
		Usage: "Link a GitHub identity to an account name in the profile store",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "account",
				Aliases:     []string{"a"},
				Usage:       "GitHub account name to link the identity to",
				Required:    true,
				Sources:     cli.EnvVars("PAGEGATE_GITHUB_ACCOUNT"),
				Destination: &account,
			},
			&cli.StringFlag{
				Name:        "token",
				Aliases:     []string{"t"},
				Usage:       "GitHub access token of the identity",
				Required:    true,
				Sources:     cli.EnvVars("PAGEGATE_GITHUB_TOKEN"),
				Destination: &token,
			},
		}, github.Flags(), firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if !firestore.Enabled() {
				return goerr.New("firestore-project-id is required to link a profile")
			}

			sessionSvc, err := github.NewSessionService()
			if err != nil {
				return err
			}
			identity, err := sessionSvc.CurrentIdentity(ctx, types.SessionToken(token))
			if err != nil {
				return goerr.Wrap(err, "failed to resolve token owner")
			}

			profiles, err := firestore.NewRepository(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create Firestore repository")
			}

			now := logging.CtxTime(ctx).UTC()
			if err := profiles.Put(ctx, &model.Profile{
				Identity:    identity,
				AccountName: types.AccountName(account),
				CreatedAt:   now,
				UpdatedAt:   now,
			}); err != nil {
				return goerr.Wrap(err, "failed to put profile")
			}

			logging.Default().Info("linked profile",
				slog.Any("identity", identity),
				slog.String("account", account),
			)
			return nil
		},
	}
}
