package repository

import (
	"context"
	"fmt"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/domain/repository"
	"NZWalks-API/internal/store"
)

type StoreWalkDifficultiesRepository struct {
	store *store.Store
}

func NewStoreWalkDifficultiesRepository(s *store.Store) repository.WalkDifficultiesRepository {
	return &StoreWalkDifficultiesRepository{
		store: s,
	}
}

func (r *StoreWalkDifficultiesRepository) GetAll(ctx context.Context) ([]model.WalkDifficulty, error) {
	difficulties, err := r.store.WalkDifficulties.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("全難易度データの取得失敗: %w", err)
	}
	return difficulties, nil
}

func (r *StoreWalkDifficultiesRepository) GetByID(ctx context.Context, id string) (*model.WalkDifficulty, error) {
	difficulty, err := r.store.WalkDifficulties.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnlessNotFound("難易度データの取得失敗", err)
	}
	return difficulty, nil
}

func (r *StoreWalkDifficultiesRepository) Add(ctx context.Context, difficulty *model.WalkDifficulty) (*model.WalkDifficulty, error) {
	record := model.WalkDifficulty{Code: difficulty.Code}

	created, err := r.store.WalkDifficulties.Insert(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("難易度データの作成失敗: %w", err)
	}
	return created, nil
}

// Update code だけを上書きする
func (r *StoreWalkDifficultiesRepository) Update(ctx context.Context, id string, difficulty *model.WalkDifficulty) (*model.WalkDifficulty, error) {
	updated, err := r.store.WalkDifficulties.Update(ctx, id, difficulty)
	if err != nil {
		return nil, wrapUnlessNotFound("難易度データの更新失敗", err)
	}
	return updated, nil
}

func (r *StoreWalkDifficultiesRepository) Delete(ctx context.Context, id string) (*model.WalkDifficulty, error) {
	removed, err := r.store.WalkDifficulties.Remove(ctx, id)
	if err != nil {
		return nil, wrapUnlessNotFound("難易度データの削除失敗", err)
	}
	return removed, nil
}
