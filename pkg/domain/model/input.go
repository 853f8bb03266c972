package model

import (
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

var (
	// GitHub login: alphanumeric and single hyphens, max 39 characters.
	ptnValidOwner = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,38})?$`)
	ptnValidRepo  = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidationError carries per-field messages for a schema violation.
type ValidationError struct {
	Fields map[string]string
}

func (x *ValidationError) Error() string {
	keys := make([]string, 0, len(x.Fields))
	for k := range x.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

func (x *ValidationError) Unwrap() error {
	return types.ErrValidationFailed
}

type fieldErrors map[string]string

func (x fieldErrors) orNil() error {
	if len(x) == 0 {
		return nil
	}
	return &ValidationError{Fields: x}
}

func validateOwnerRepo(fields fieldErrors, owner types.AccountName, repo types.RepoName) {
	if owner == "" {
		fields["owner"] = "required"
	} else if !ptnValidOwner.MatchString(string(owner)) {
		fields["owner"] = "invalid account name"
	}
	if repo == "" {
		fields["repo"] = "required"
	} else if !ptnValidRepo.MatchString(string(repo)) {
		fields["repo"] = "invalid repository name"
	}
}

type ListPagesSitesInput struct {
	ProviderToken types.ProviderToken `json:"provider_token"`
}

func (x *ListPagesSitesInput) Validate() error {
	fields := fieldErrors{}
	if x.ProviderToken == "" {
		fields["provider_token"] = "required"
	}
	return fields.orNil()
}

type GetPagesInfoInput struct {
	Owner         types.AccountName   `json:"owner"`
	Repo          types.RepoName      `json:"repo"`
	ProviderToken types.ProviderToken `json:"provider_token"`
}

func (x *GetPagesInfoInput) Validate() error {
	fields := fieldErrors{}
	validateOwnerRepo(fields, x.Owner, x.Repo)
	if x.ProviderToken == "" {
		fields["provider_token"] = "required"
	}
	return fields.orNil()
}

type EnablePagesInput struct {
	Owner         types.AccountName   `json:"owner"`
	Repo          types.RepoName      `json:"repo"`
	Branch        types.BranchName    `json:"branch"`
	Path          string              `json:"path"`
	ProviderToken types.ProviderToken `json:"provider_token"`
}

func (x *EnablePagesInput) Validate() error {
	fields := fieldErrors{}
	validateOwnerRepo(fields, x.Owner, x.Repo)
	if x.Branch == "" {
		fields["branch"] = "required"
	} else if strings.Contains(string(x.Branch), "..") || strings.ContainsAny(string(x.Branch), " ~^:?*[\\") {
		fields["branch"] = "invalid branch name"
	}
	if x.Path != types.PagesPathRoot && x.Path != types.PagesPathDocs {
		fields["path"] = `must be "/" or "/docs"`
	}
	if x.ProviderToken == "" {
		fields["provider_token"] = "required"
	}
	return fields.orNil()
}
