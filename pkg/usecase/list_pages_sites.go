package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/utils/errutil"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// probeResult pairs one repository with its probe outcome. A failed probe is
// data, not a raised error, so the collector can isolate it.
type probeResult struct {
	status *model.PagesStatus
	err    error
}

// ListPagesSites lists all repositories owned by the account, probes the
// Pages configuration of each one, and returns the enabled sites in listing
// order. Repositories without Pages are dropped silently; repositories whose
// probe fails are logged and dropped. A single repository must never fail
// the aggregate.
func (x *UseCase) ListPagesSites(ctx context.Context, identity types.Identity, account types.AccountName, input *model.ListPagesSitesInput) ([]*model.EnabledSiteSummary, error) {
	if x.clients.GitHubPages() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)

	repos, err := x.clients.GitHubPages().ListOwnerRepos(ctx, input.ProviderToken)
	if err != nil {
		// No repositories to scan: fatal to the whole request
		return nil, goerr.Wrap(err, "failed to list repositories",
			goerr.V("account", account),
		)
	}

	// Scope hard to the resolved account and skip repositories that can
	// never host a live site.
	var targets []*model.Repository
	for _, repo := range repos {
		if repo.Owner != account {
			logger.Debug("Skipping repository with different owner",
				slog.Any("repo_owner", repo.Owner),
				slog.Any("repo", repo.Name),
				slog.Any("account", account),
			)
			continue
		}
		if repo.Archived || repo.Disabled {
			logger.Debug("Skipping archived or disabled repository",
				slog.Any("owner", repo.Owner),
				slog.Any("repo", repo.Name),
			)
			continue
		}
		targets = append(targets, repo)
	}

	logger.Info("Starting pages fleet scan",
		slog.Any("account", account),
		slog.Int("total_repos", len(repos)),
		slog.Int("targets", len(targets)),
	)

	results := make([]probeResult, len(targets))

	var eg errgroup.Group
	eg.SetLimit(x.probeConcurrency)
	for i, repo := range targets {
		eg.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, x.probeTimeout)
			defer cancel()

			status, err := x.clients.GitHubPages().GetPagesInfo(probeCtx, input.ProviderToken, repo.Owner, repo.Name)
			results[i] = probeResult{status: status, err: err}
			// Probe failures are collected as data; returning them here
			// would cancel sibling probes.
			return nil
		})
	}
	_ = eg.Wait()

	var sites []*model.EnabledSiteSummary
	var failureCount int
	for i, repo := range targets {
		result := results[i]
		if result.err != nil {
			failureCount++
			logger.Warn("Failed to probe repository, dropping from aggregate",
				slog.Any("owner", repo.Owner),
				slog.Any("repo", repo.Name),
				slog.String("error", result.err.Error()),
			)
			continue
		}
		if !result.status.Enabled {
			continue
		}

		sites = append(sites, &model.EnabledSiteSummary{
			Repository: repo.Name,
			Owner:      repo.Owner,
			URL:        result.status.URL,
			Status:     result.status.BuildStatus,
			Source:     result.status.Source,
			UpdatedAt:  repo.UpdatedAt,
		})
	}

	logger.Info("Completed pages fleet scan",
		slog.Any("account", account),
		slog.Int("targets", len(targets)),
		slog.Int("sites", len(sites)),
		slog.Int("failures", failureCount),
	)

	audit := &model.ScanAudit{
		ID:            types.NewAuditID(),
		Timestamp:     logging.CtxTime(ctx).UTC(),
		Identity:      identity,
		Account:       account,
		TotalRepos:    len(targets),
		SitesFound:    len(sites),
		ProbeFailures: failureCount,
	}
	if err := x.insertScanAudit(ctx, audit); err != nil {
		// The aggregate view is the product; the audit trail is best effort.
		errutil.HandleError(ctx, "fail to insert scan audit", err)
	}

	return sites, nil
}
