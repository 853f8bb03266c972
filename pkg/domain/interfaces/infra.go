package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubPages SessionService ProfileRepository BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

// GitHubPages is the upstream hosting API surface this layer consumes. The
// credential is supplied per call and must not be retained by implementations.
type GitHubPages interface {
	// ListOwnerRepos enumerates all repositories owned by the authenticated
	// user of the token, in upstream listing order.
	ListOwnerRepos(ctx context.Context, token types.ProviderToken) ([]*model.Repository, error)

	// GetPagesInfo reads the Pages configuration of one repository. An
	// upstream 404 (no Pages configured) is not an error: it returns a
	// PagesStatus with Enabled=false and a nil error.
	GetPagesInfo(ctx context.Context, token types.ProviderToken, owner types.AccountName, repo types.RepoName) (*model.PagesStatus, error)

	// EnablePages turns on Pages for the repository with the given source.
	EnablePages(ctx context.Context, token types.ProviderToken, owner types.AccountName, repo types.RepoName, src *model.PagesSource) (*model.PagesStatus, error)
}

// SessionService resolves a session bearer token into an opaque identity.
type SessionService interface {
	CurrentIdentity(ctx context.Context, token types.SessionToken) (types.Identity, error)
}

// ProfileRepository maps identities to upstream account profiles.
type ProfileRepository interface {
	Get(ctx context.Context, identity types.Identity) (*model.Profile, error)
	Put(ctx context.Context, profile *model.Profile) error
}

// BigQuery is the scan-audit sink.
type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
