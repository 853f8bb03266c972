package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/repository"
	"github.com/m-mizutani/pagegate/pkg/repository/memory"
)

func TestProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Put(ctx, &model.Profile{
			Identity:    "github:1234",
			AccountName: "alice",
		}))

		profile := gt.R1(repo.Get(ctx, "github:1234")).NoError(t)
		gt.V(t, profile.AccountName).Equal("alice")
	})

	t.Run("get unknown identity returns ErrNotFound", func(t *testing.T) {
		repo := memory.New()
		_, err := repo.Get(ctx, "github:nobody")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("put without identity is rejected", func(t *testing.T) {
		repo := memory.New()
		err := repo.Put(ctx, &model.Profile{AccountName: "alice"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repository.ErrInvalidInput))
	})

	t.Run("returned profile is a copy", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Put(ctx, &model.Profile{
			Identity:    "github:1234",
			AccountName: "alice",
		}))

		profile := gt.R1(repo.Get(ctx, "github:1234")).NoError(t)
		profile.AccountName = "mallory"

		again := gt.R1(repo.Get(ctx, "github:1234")).NoError(t)
		gt.V(t, again.AccountName).Equal("alice")
	})
}
