package ghsession

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"golang.org/x/oauth2"
)

const defaultTimeout = 10 * time.Second

// Client resolves a session bearer token into an identity by introspecting
// it against the GitHub user endpoint. Deployments with a dedicated session
// service can swap this behind interfaces.SessionService.
type Client struct {
	rawBaseURL string
	baseURL    *url.URL
	timeout    time.Duration
}

var _ interfaces.SessionService = (*Client)(nil)

type Option func(*Client)

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

// CurrentIdentity validates the token upstream and returns a stable identity
// derived from the user's numeric ID (logins can be renamed, IDs cannot).
func (x *Client) CurrentIdentity(ctx context.Context, token types.SessionToken) (types.Identity, error) {
	if token == "" {
		return "", goerr.Wrap(types.ErrUnauthenticated, "session token is empty")
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = x.timeout

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return "", goerr.Wrap(types.ErrUnauthenticated, "session token rejected")
		}
		return "", goerr.Wrap(err, "failed to introspect session token")
	}

	return types.Identity(fmt.Sprintf("github:%d", user.GetID())), nil
}
