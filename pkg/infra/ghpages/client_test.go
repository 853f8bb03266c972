package ghpages_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/infra/ghpages"
)

func newTestClient(t *testing.T, handler http.Handler) *ghpages.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gt.R1(ghpages.New(ghpages.WithBaseURL(srv.URL + "/"))).NoError(t)
	return client
}

func TestListOwnerRepos(t *testing.T) {
	var gotAuth, gotAffiliation string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/user/repos")
		gotAuth = r.Header.Get("Authorization")
		gotAffiliation = r.URL.Query().Get("affiliation")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"blog","owner":{"login":"alice"},"archived":false,"updated_at":"2025-04-01T10:00:00Z"},
			{"name":"attic","owner":{"login":"alice"},"archived":true}
		]`))
	}))

	repos := gt.R1(client.ListOwnerRepos(context.Background(), "gho_token")).NoError(t)
	gt.A(t, repos).Length(2)
	gt.V(t, repos[0].Name).Equal("blog")
	gt.V(t, repos[0].Owner).Equal("alice")
	gt.False(t, repos[0].Archived)
	gt.True(t, repos[1].Archived)
	gt.V(t, gotAuth).Equal("Bearer gho_token")
	gt.V(t, gotAffiliation).Equal("owner")
}

func TestGetPagesInfo(t *testing.T) {
	t.Run("enabled site", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/blog/pages", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"html_url":"https://alice.github.io/blog/",
				"status":"built",
				"source":{"branch":"gh-pages","path":"/"}
			}`))
		})
		mux.HandleFunc("/repos/alice/blog/pages/builds/latest", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"built","updated_at":"2025-04-01T10:00:00Z"}`))
		})
		client := newTestClient(t, mux)

		status := gt.R1(client.GetPagesInfo(context.Background(), "gho_token", "alice", "blog")).NoError(t)
		gt.True(t, status.Enabled)
		gt.V(t, status.URL).Equal("https://alice.github.io/blog/")
		gt.V(t, string(status.BuildStatus)).Equal("built")
		gt.V(t, status.Source).NotEqual(nil)
		gt.V(t, string(status.Source.Branch)).Equal("gh-pages")
		gt.V(t, status.Source.Path).Equal("/")
		gt.V(t, status.LastBuiltAt).NotEqual(nil)
		gt.V(t, status.LastBuiltAt.UTC().Format(time.RFC3339)).Equal("2025-04-01T10:00:00Z")
	})

	t.Run("missing build record leaves LastBuiltAt empty", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/blog/pages", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"html_url":"https://alice.github.io/blog/","status":"built"}`))
		})
		client := newTestClient(t, mux)

		status := gt.R1(client.GetPagesInfo(context.Background(), "gho_token", "alice", "blog")).NoError(t)
		gt.True(t, status.Enabled)
		gt.V(t, status.LastBuiltAt).Equal(nil)
	})

	t.Run("404 means not configured, not an error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		}))

		status := gt.R1(client.GetPagesInfo(context.Background(), "gho_token", "alice", "tools")).NoError(t)
		gt.False(t, status.Enabled)
		gt.V(t, status.URL).Equal("")
	})

	t.Run("other failures carry the upstream status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
		}))

		_, err := client.GetPagesInfo(context.Background(), "gho_token", "alice", "secret")
		gt.Error(t, err)

		var upstream *model.UpstreamError
		gt.True(t, errors.As(err, &upstream))
		gt.V(t, upstream.StatusCode).Equal(http.StatusInternalServerError)
	})
}

func TestEnablePages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		gt.V(t, r.URL.Path).Equal("/repos/alice/blog/pages")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"html_url":"https://alice.github.io/blog/",
			"status":"building",
			"source":{"branch":"gh-pages","path":"/"}
		}`))
	}))

	status := gt.R1(client.EnablePages(context.Background(), "gho_token", "alice", "blog", &model.PagesSource{
		Branch: "gh-pages",
		Path:   "/",
	})).NoError(t)
	gt.True(t, status.Enabled)
	gt.V(t, string(status.BuildStatus)).Equal("building")
}
