package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pagegate/pkg/domain/mock"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
	"github.com/m-mizutani/pagegate/pkg/infra"
	"github.com/m-mizutani/pagegate/pkg/usecase"
)

func TestEnablePages(t *testing.T) {
	t.Run("success returns url and status", func(t *testing.T) {
		mockGH := &mock.GitHubPagesMock{
			EnablePagesFunc: func(ctx context.Context, token types.ProviderToken, owner types.AccountName, repo types.RepoName, src *model.PagesSource) (*model.PagesStatus, error) {
				return &model.PagesStatus{
					Enabled:     true,
					URL:         "https://alice.github.io/blog/",
					BuildStatus: "building",
					Source:      src,
				}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubPages(mockGH)))

		result := gt.R1(uc.EnablePages(context.Background(), &model.EnablePagesInput{
			Owner:         "alice",
			Repo:          "blog",
			Branch:        "gh-pages",
			Path:          "/",
			ProviderToken: "gho_token",
		})).NoError(t)

		gt.V(t, result.URL).Equal("https://alice.github.io/blog/")
		gt.V(t, string(result.Status)).Equal("building")
		gt.S(t, result.Message).Contains("enabled")

		calls := mockGH.EnablePagesCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, string(calls[0].Src.Branch)).Equal("gh-pages")
		gt.V(t, calls[0].Src.Path).Equal("/")
	})

	t.Run("upstream failure is passed up", func(t *testing.T) {
		mockGH := &mock.GitHubPagesMock{
			EnablePagesFunc: func(ctx context.Context, token types.ProviderToken, owner types.AccountName, repo types.RepoName, src *model.PagesSource) (*model.PagesStatus, error) {
				return nil, &model.UpstreamError{StatusCode: 422}
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHubPages(mockGH)))

		_, err := uc.EnablePages(context.Background(), &model.EnablePagesInput{
			Owner:         "alice",
			Repo:          "blog",
			Branch:        "gh-pages",
			Path:          "/",
			ProviderToken: "gho_token",
		})
		gt.Error(t, err)

		var upstream *model.UpstreamError
		gt.True(t, errors.As(err, &upstream))
		gt.V(t, upstream.StatusCode).Equal(422)
	})

	t.Run("no GitHub client configured", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.EnablePages(context.Background(), &model.EnablePagesInput{
			Owner:         "alice",
			Repo:          "blog",
			Branch:        "gh-pages",
			Path:          "/",
			ProviderToken: "gho_token",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
