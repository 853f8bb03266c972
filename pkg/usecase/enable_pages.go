package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
)

// EnablePages turns on GitHub Pages for one repository with the requested
// source branch and folder.
func (x *UseCase) EnablePages(ctx context.Context, input *model.EnablePagesInput) (*model.EnablePagesResult, error) {
	if x.clients.GitHubPages() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	src := &model.PagesSource{
		Branch: input.Branch,
		Path:   input.Path,
	}

	status, err := x.clients.GitHubPages().EnablePages(ctx, input.ProviderToken, input.Owner, input.Repo, src)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enable pages",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
			goerr.V("branch", input.Branch),
			goerr.V("path", input.Path),
		)
	}

	logging.From(ctx).Info("GitHub Pages enabled",
		slog.Any("owner", input.Owner),
		slog.Any("repo", input.Repo),
		slog.Any("url", status.URL),
	)

	return &model.EnablePagesResult{
		URL:     status.URL,
		Status:  status.BuildStatus,
		Message: "GitHub Pages has been enabled",
	}, nil
}
