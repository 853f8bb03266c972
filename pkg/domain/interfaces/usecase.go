package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/pagegate/pkg/domain/model"
	"github.com/m-mizutani/pagegate/pkg/domain/types"
)

type UseCase interface {
	ListPagesSites(ctx context.Context, identity types.Identity, account types.AccountName, input *model.ListPagesSitesInput) ([]*model.EnabledSiteSummary, error)
	GetPagesInfo(ctx context.Context, input *model.GetPagesInfoInput) (*model.PagesStatus, error)
	EnablePages(ctx context.Context, input *model.EnablePagesInput) (*model.EnablePagesResult, error)
}
