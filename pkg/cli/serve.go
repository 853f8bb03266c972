package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/pagegate/pkg/cli/config"
	"github.com/m-mizutani/pagegate/pkg/controller/server"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/infra"
	"github.com/m-mizutani/pagegate/pkg/repository/memory"
	"github.com/m-mizutani/pagegate/pkg/usecase"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
	"github.com/m-mizutani/pagegate/pkg/utils/safe"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr             string
		probeConcurrency int64
		probeTimeout     time.Duration

		github    config.GitHub
		firestore config.Firestore
		bigQuery  config.BigQuery
		rateLimit config.RateLimit
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("PAGEGATE_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "probe-concurrency",
			Usage:       "Max concurrent Pages probes during a fleet scan",
			Value:       8,
			Sources:     cli.EnvVars("PAGEGATE_PROBE_CONCURRENCY"),
			Destination: &probeConcurrency,
		},
		&cli.DurationFlag{
			Name:        "probe-timeout",
			Usage:       "Timeout of a single Pages probe",
			Value:       15 * time.Second,
			Sources:     cli.EnvVars("PAGEGATE_PROBE_TIMEOUT"),
			Destination: &probeTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			firestore.Flags(),
			bigQuery.Flags(),
			rateLimit.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Firestore", firestore),
				slog.Any("BigQuery", bigQuery),
				slog.Any("RateLimit", rateLimit),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			pagesClient, err := github.NewPagesClient()
			if err != nil {
				return err
			}
			sessionSvc, err := github.NewSessionService()
			if err != nil {
				return err
			}

			var profiles interfaces.ProfileRepository
			if firestore.Enabled() {
				repo, err := firestore.NewRepository(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to create Firestore repository")
				}
				profiles = repo
			} else {
				logging.Default().Warn("firestore is not configured, using in-memory profile store")
				profiles = memory.New()
			}

			infraOptions := []infra.Option{
				infra.WithGitHubPages(pagesClient),
				infra.WithSession(sessionSvc),
				infra.WithProfiles(profiles),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				defer safe.Close(bqClient)
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients,
				usecase.WithProbeConcurrency(int(probeConcurrency)),
				usecase.WithProbeTimeout(probeTimeout),
			)
			s := server.New(uc,
				server.WithSession(clients.Session()),
				server.WithProfiles(clients.Profiles()),
				server.WithRateLimiter(rateLimit.NewLimiter()),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
