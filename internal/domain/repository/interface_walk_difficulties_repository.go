package repository

import (
	"context"

	"NZWalks-API/internal/domain/model"
)

type WalkDifficultiesRepository interface {
	GetAll(ctx context.Context) ([]model.WalkDifficulty, error)
	GetByID(ctx context.Context, id string) (*model.WalkDifficulty, error)
	Add(ctx context.Context, difficulty *model.WalkDifficulty) (*model.WalkDifficulty, error)
	Update(ctx context.Context, id string, difficulty *model.WalkDifficulty) (*model.WalkDifficulty, error)
	Delete(ctx context.Context, id string) (*model.WalkDifficulty, error)
}
