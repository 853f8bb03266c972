package ghpages

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const defaultTimeout = 10 * time.Second

// Client talks to the GitHub REST API with a caller-supplied token. The
// token is never stored; a fresh API client is built per call so the
// credential's lifetime is exactly the request's lifetime.
type Client struct {
	rawBaseURL string
	baseURL    *url.URL
	timeout    time.Duration
}

var _ interfaces.GitHubPages = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests and GHE.
func WithBaseURL(raw string) Option {
	return func(x *Client) {
		x.rawBaseURL = raw
	}
}

func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		timeout: defaultTimeout,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.rawBaseURL != "" {
		raw := client.rawBaseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		baseURL, err := url.Parse(raw)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", raw))
		}
		client.baseURL = baseURL
	}

	return client, nil
}

func (x *Client) buildGithubClient(ctx context.Context, token types.ProviderToken) *github.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = x.timeout

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func upstreamStatus(resp *github.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// ListOwnerRepos returns all repositories owned by the token's user, in the
// order the upstream lists them.
func (x *Client) ListOwnerRepos(ctx context.Context, token types.ProviderToken) ([]*model.Repository, error) {
	client := x.buildGithubClient(ctx, token)

	var allRepos []*model.Repository
	opts := &github.RepositoryListOptions{
		Affiliation: "owner",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		result, resp, err := client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, goerr.Wrap(&model.UpstreamError{StatusCode: upstreamStatus(resp)},
				"failed to list repositories", goerr.V("cause", err.Error()))
		}

		for _, repo := range result {
			allRepos = append(allRepos, &model.Repository{
				Owner:     types.AccountName(repo.GetOwner().GetLogin()),
				Name:      types.RepoName(repo.GetName()),
				Archived:  repo.GetArchived(),
				Disabled:  repo.GetDisabled(),
				UpdatedAt: repo.GetUpdatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed owner repositories",
		slog.Int("count", len(allRepos)),
	)

	return allRepos, nil
}

// GetPagesInfo reads the Pages configuration of one repository. An upstream
// 404 means Pages is not configured and is reported as Enabled=false, not as
// an error.
func (x *Client) GetPagesInfo(ctx context.Context, token types.ProviderToken, owner types.AccountName, repo types.RepoName) (*model.PagesStatus, error) {
	client := x.buildGithubClient(ctx, token)

	pages, resp, err := client.Repositories.GetPagesInfo(ctx, string(owner), string(repo))
	if err != nil {
		if upstreamStatus(resp) == http.StatusNotFound {
			return &model.PagesStatus{Enabled: false}, nil
		}
		return nil, goerr.Wrap(&model.UpstreamError{StatusCode: upstreamStatus(resp)},
			"failed to get pages info",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("cause", err.Error()),
		)
	}

	status := pagesToStatus(pages)

	// The Pages config endpoint carries no build timestamp; the latest build
	// does. Best effort: an unavailable build record leaves LastBuiltAt empty.
	if build, _, err := client.Repositories.GetLatestPagesBuild(ctx, string(owner), string(repo)); err == nil {
		if updated := build.GetUpdatedAt(); !updated.IsZero() {
			status.LastBuiltAt = &updated.Time
		}
	}

	return status, nil
}

// EnablePages turns on Pages for the repository with the given source.
func (x *Client) EnablePages(ctx context.Context, token types.ProviderToken, owner types.AccountName, repo types.RepoName, src *model.PagesSource) (*model.PagesStatus, error) {
	client := x.buildGithubClient(ctx, token)

	pages, resp, err := client.Repositories.EnablePages(ctx, string(owner), string(repo), &github.Pages{
		Source: &github.PagesSource{
			Branch: github.String(string(src.Branch)),
			Path:   github.String(src.Path),
		},
	})
	if err != nil {
		return nil, goerr.Wrap(&model.UpstreamError{StatusCode: upstreamStatus(resp)},
			"failed to enable pages",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("cause", err.Error()),
		)
	}

	logging.From(ctx).Info("Enabled GitHub Pages",
		slog.Any("owner", owner),
		slog.Any("repo", repo),
		slog.Any("branch", src.Branch),
		slog.String("path", src.Path),
	)

	return pagesToStatus(pages), nil
}

func pagesToStatus(pages *github.Pages) *model.PagesStatus {
	status := &model.PagesStatus{
		Enabled:     true,
		URL:         pages.GetHTMLURL(),
		BuildStatus: types.BuildStatus(pages.GetStatus()),
	}
	if src := pages.GetSource(); src != nil {
		status.Source = &model.PagesSource{
			Branch: types.BranchName(src.GetBranch()),
			Path:   src.GetPath(),
		}
	}
	return status
}
