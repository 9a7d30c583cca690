package repository

import (
	"context"

	"NZWalks-API/internal/domain/model"
)

// RegionsRepository 地域の永続化。存在しないIDには model.ErrNotFound を返す
type RegionsRepository interface {
	GetAll(ctx context.Context) ([]model.Region, error)
	GetByID(ctx context.Context, id string) (*model.Region, error)
	Add(ctx context.Context, region *model.Region) (*model.Region, error)
	Update(ctx context.Context, id string, region *model.Region) (*model.Region, error)
	Delete(ctx context.Context, id string) (*model.Region, error)
}
