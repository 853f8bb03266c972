package model

import (
	"time"

	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

// PagesSource is the publishing source of a GitHub Pages site.
type PagesSource struct {
	Branch types.BranchName `json:"branch" firestore:"branch"`
	Path   string           `json:"path" firestore:"path"`
}

// PagesStatus is the Pages configuration of a single repository. A repository
// without Pages configured is represented by the zero value (Enabled=false).
// BuildStatus is whatever string the upstream reports ("built", "building",
// "errored", ...); it is carried as opaque data and never validated here.
type PagesStatus struct {
	Enabled     bool              `json:"enabled"`
	URL         string            `json:"url,omitempty"`
	BuildStatus types.BuildStatus `json:"status,omitempty"`
	Source      *PagesSource      `json:"source,omitempty"`
	LastBuiltAt *time.Time        `json:"last_built_at,omitempty"`
}

// Repository is one entry of the upstream repository listing.
type Repository struct {
	Owner     types.AccountName
	Name      types.RepoName
	Archived  bool
	Disabled  bool
	UpdatedAt time.Time
}

// EnabledSiteSummary is the projection of an enabled Pages site returned by
// the fleet scan.
type EnabledSiteSummary struct {
	Repository types.RepoName    `json:"repository"`
	Owner      types.AccountName `json:"owner"`
	URL        string            `json:"url"`
	Status     types.BuildStatus `json:"status"`
	Source     *PagesSource      `json:"source,omitempty"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// EnablePagesResult is the outcome of enabling Pages on one repository.
type EnablePagesResult struct {
	URL     string            `json:"url"`
	Status  types.BuildStatus `json:"status"`
	Message string            `json:"message"`
}
