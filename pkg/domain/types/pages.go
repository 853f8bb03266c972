package types

import "log/slog"

type (
	Identity      string
	AccountName   string
	RepoName      string
	BranchName    string
	BuildStatus   string
	SessionToken  string
	ProviderToken string
)

// Path values accepted by the GitHub Pages API as a source folder.
const (
	PagesPathRoot = "/"
	PagesPathDocs = "/docs"
)

func (x SessionToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SessionToken) String() string {
	return "***********"
}

func (x ProviderToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x ProviderToken) String() string {
	return "***********"
}
