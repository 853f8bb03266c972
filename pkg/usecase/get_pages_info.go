package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

// GetPagesInfo probes one repository's Pages configuration. "Not configured"
// is a normal result (Enabled=false), not an error.
func (x *UseCase) GetPagesInfo(ctx context.Context, input *model.GetPagesInfoInput) (*model.PagesStatus, error) {
	if x.clients.GitHubPages() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	probeCtx, cancel := context.WithTimeout(ctx, x.probeTimeout)
	defer cancel()

	status, err := x.clients.GitHubPages().GetPagesInfo(probeCtx, input.ProviderToken, input.Owner, input.Repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to probe pages configuration",
			goerr.V("owner", input.Owner),
			goerr.V("repo", input.Repo),
		)
	}

	return status, nil
}
