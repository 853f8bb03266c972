package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/pagegate/pkg/infra/ghpages"
	"github.com/m-mizutani/pagegate/pkg/infra/ghsession"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	baseURL string
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise Server)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("PAGEGATE_GITHUB_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a single GitHub API call",
			Category:    "GitHub",
			Sources:     cli.EnvVars("PAGEGATE_GITHUB_TIMEOUT"),
			Value:       30 * time.Second,
			Destination: &x.timeout,
		},
	}
}

func (x *GitHub) NewPagesClient() (*ghpages.Client, error) {
	options := []ghpages.Option{
		ghpages.WithTimeout(x.timeout),
	}
	if x.baseURL != "" {
		options = append(options, ghpages.WithBaseURL(x.baseURL))
	}
	return ghpages.New(options...)
}

func (x *GitHub) NewSessionService() (*ghsession.Client, error) {
	options := []ghsession.Option{
		ghsession.WithTimeout(x.timeout),
	}
	if x.baseURL != "" {
		options = append(options, ghsession.WithBaseURL(x.baseURL))
	}
	return ghsession.New(options...)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("baseURL", x.baseURL),
		slog.Any("timeout", x.timeout),
	)
}
