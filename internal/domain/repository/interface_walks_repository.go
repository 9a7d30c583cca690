package repository

import (
	"context"

	"NZWalks-API/internal/domain/model"
)

// WalksRepository 散歩道の永続化。
// GetAll / GetByID は地域と難易度を解決済みで返し、Add / Update は未解決のまま返す
type WalksRepository interface {
	GetAll(ctx context.Context) ([]model.Walk, error)
	GetByID(ctx context.Context, id string) (*model.Walk, error)
	Add(ctx context.Context, walk *model.Walk) (*model.Walk, error)
	Update(ctx context.Context, id string, walk *model.Walk) (*model.Walk, error)
	Delete(ctx context.Context, id string) (*model.Walk, error)
}
