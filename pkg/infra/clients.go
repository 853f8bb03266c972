package infra

import (
	"github.com/m-mizutani/pagegate/pkg/domain/interfaces"
)

type Clients struct {
	githubPages interfaces.GitHubPages
	session     interfaces.SessionService
	profiles    interfaces.ProfileRepository
	bqClient    interfaces.BigQuery
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubPages() interfaces.GitHubPages {
	return x.githubPages
}
func (x *Clients) Session() interfaces.SessionService {
	return x.session
}
func (x *Clients) Profiles() interfaces.ProfileRepository {
	return x.profiles
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHubPages(client interfaces.GitHubPages) Option {
	return func(x *Clients) {
		x.githubPages = client
	}
}

func WithSession(svc interfaces.SessionService) Option {
	return func(x *Clients) {
		x.session = svc
	}
}

func WithProfiles(repo interfaces.ProfileRepository) Option {
	return func(x *Clients) {
		x.profiles = repo
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
