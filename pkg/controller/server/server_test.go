package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pagegate/pkg/controller/server"
	"github.com/m-mizutani/pagegate/pkg/domain/mock"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/utils/ratelimit"
)

func newSession(identity types.Identity) *mock.SessionServiceMock {
	return &mock.SessionServiceMock{
		CurrentIdentityFunc: func(ctx context.Context, token types.SessionToken) (types.Identity, error) {
			if token == "" {
				return "", types.ErrUnauthenticated
			}
			return identity, nil
		},
	}
}

func newProfiles(identity types.Identity, account types.AccountName) *mock.ProfileRepositoryMock {
	return &mock.ProfileRepositoryMock{
		GetFunc: func(ctx context.Context, id types.Identity) (*model.Profile, error) {
			if id != identity {
				return nil, types.ErrNoProfile
			}
			return &model.Profile{Identity: id, AccountName: account}, nil
		},
	}
}

func postJSON(t *testing.T, srv *server.Server, path string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	raw := gt.R1(json.Marshal(body)).NoError(t)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer session-token")
	}

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("OPTIONS preflight returns 200 with CORS headers", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/list-pages-sites", nil)
		req.Header.Set("Origin", "https://dashboard.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.Len()).Equal(0)
		gt.V(t, rec.Header().Get("Access-Control-Allow-Origin")).Equal("*")
	})
}

func TestListPagesSitesHandler(t *testing.T) {
	site := &model.EnabledSiteSummary{
		Repository: "blog",
		Owner:      "alice",
		URL:        "https://alice.github.io/blog/",
		Status:     "built",
		Source:     &model.PagesSource{Branch: "gh-pages", Path: "/"},
	}

	newServer := func(uc *mock.UseCaseMock, options ...server.Option) *server.Server {
		base := []server.Option{
			server.WithSession(newSession("github:1")),
			server.WithProfiles(newProfiles("github:1", "alice")),
		}
		return server.New(uc, append(base, options...)...)
	}

	t.Run("success returns sites with rate limit headers", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListPagesSitesFunc: func(ctx context.Context, identity types.Identity, account types.AccountName, input *model.ListPagesSitesInput) ([]*model.EnabledSiteSummary, error) {
				return []*model.EnabledSiteSummary{site}, nil
			},
		}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusOK)

		var body struct {
			Sites []*model.EnabledSiteSummary `json:"sites"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		gt.A(t, body.Sites).Length(1)
		gt.V(t, body.Sites[0].Repository).Equal("blog")

		gt.V(t, rec.Header().Get("X-RateLimit-Limit")).NotEqual("")
		gt.V(t, rec.Header().Get("X-RateLimit-Remaining")).NotEqual("")
		gt.V(t, rec.Header().Get("X-RateLimit-Reset")).NotEqual("")

		calls := uc.ListPagesSitesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Identity).Equal("github:1")
		gt.V(t, calls[0].Account).Equal("alice")
	})

	t.Run("empty result is an empty array, not null", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListPagesSitesFunc: func(ctx context.Context, identity types.Identity, account types.AccountName, input *model.ListPagesSitesInput) ([]*model.EnabledSiteSummary, error) {
				return nil, nil
			},
		}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"sites":[]`)
	})

	t.Run("missing provider_token is a 400 with field message", func(t *testing.T) {
		srv := newServer(&mock.UseCaseMock{})

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{}, true)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.S(t, rec.Body.String()).Contains("provider_token")
	})

	t.Run("missing bearer token is a 401", func(t *testing.T) {
		srv := newServer(&mock.UseCaseMock{})

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
			"provider_token": "gho_token",
		}, false)

		gt.V(t, rec.Code).Equal(http.StatusUnauthorized)
	})

	t.Run("unlinked identity is a 403", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{},
			server.WithSession(newSession("github:2")),
			server.WithProfiles(newProfiles("github:1", "alice")),
		)

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("listing failure is a sanitized upstream error", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListPagesSitesFunc: func(ctx context.Context, identity types.Identity, account types.AccountName, input *model.ListPagesSitesInput) ([]*model.EnabledSiteSummary, error) {
				return nil, &model.UpstreamError{StatusCode: http.StatusInternalServerError}
			},
		}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusBadGateway)
		gt.S(t, rec.Body.String()).Contains("upstream error")
	})

	t.Run("exceeding the budget is a 429 with reset metadata", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ListPagesSitesFunc: func(ctx context.Context, identity types.Identity, account types.AccountName, input *model.ListPagesSitesInput) ([]*model.EnabledSiteSummary, error) {
				return []*model.EnabledSiteSummary{site}, nil
			},
		}
		srv := newServer(uc, server.WithRateLimiter(ratelimit.New(2, time.Minute)))

		for i := 0; i < 2; i++ {
			rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
				"provider_token": "gho_token",
			}, true)
			gt.V(t, rec.Code).Equal(http.StatusOK)
		}

		rec := postJSON(t, srv, "/api/v1/list-pages-sites", map[string]string{
			"provider_token": "gho_token",
		}, true)
		gt.V(t, rec.Code).Equal(http.StatusTooManyRequests)
		gt.V(t, rec.Header().Get("X-RateLimit-Remaining")).Equal("0")
		gt.V(t, rec.Header().Get("X-RateLimit-Reset")).NotEqual("")
		gt.S(t, rec.Body.String()).Contains("rate limit exceeded")

		// The rejected request never reaches the scanner
		gt.A(t, uc.ListPagesSitesCalls()).Length(2)
	})
}

func TestGetPagesInfoHandler(t *testing.T) {
	newServer := func(uc *mock.UseCaseMock) *server.Server {
		return server.New(uc,
			server.WithSession(newSession("github:1")),
			server.WithProfiles(newProfiles("github:1", "alice")),
		)
	}

	t.Run("not configured responds 200 with enabled false", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			GetPagesInfoFunc: func(ctx context.Context, input *model.GetPagesInfoInput) (*model.PagesStatus, error) {
				return &model.PagesStatus{Enabled: false}, nil
			},
		}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/get-pages-info", map[string]string{
			"owner":          "alice",
			"repo":           "tools",
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"enabled":false`)
	})

	t.Run("cross-account owner is rejected before any upstream call", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/get-pages-info", map[string]string{
			"owner":          "mallory",
			"repo":           "blog",
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
		gt.A(t, uc.GetPagesInfoCalls()).Length(0)
	})
}

func TestEnablePagesHandler(t *testing.T) {
	newServer := func(uc *mock.UseCaseMock) *server.Server {
		return server.New(uc,
			server.WithSession(newSession("github:1")),
			server.WithProfiles(newProfiles("github:1", "alice")),
		)
	}

	t.Run("success responds with url and message", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			EnablePagesFunc: func(ctx context.Context, input *model.EnablePagesInput) (*model.EnablePagesResult, error) {
				return &model.EnablePagesResult{
					URL:     "https://alice.github.io/blog/",
					Status:  "building",
					Message: "GitHub Pages has been enabled",
				}, nil
			},
		}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/enable-github-pages", map[string]string{
			"owner":          "alice",
			"repo":           "blog",
			"branch":         "gh-pages",
			"path":           "/",
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.S(t, rec.Body.String()).Contains(`"success":true`)
		gt.S(t, rec.Body.String()).Contains("https://alice.github.io/blog/")
	})

	t.Run("invalid path is a 400 with field message", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/enable-github-pages", map[string]string{
			"owner":          "alice",
			"repo":           "blog",
			"branch":         "gh-pages",
			"path":           "/site",
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.S(t, rec.Body.String()).Contains("path")
		gt.A(t, uc.EnablePagesCalls()).Length(0)
	})

	t.Run("cross-account owner is rejected with 403", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newServer(uc)

		rec := postJSON(t, srv, "/api/v1/enable-github-pages", map[string]string{
			"owner":          "mallory",
			"repo":           "blog",
			"branch":         "gh-pages",
			"path":           "/",
			"provider_token": "gho_token",
		}, true)

		gt.V(t, rec.Code).Equal(http.StatusForbidden)
		gt.A(t, uc.EnablePagesCalls()).Length(0)
	})
}
