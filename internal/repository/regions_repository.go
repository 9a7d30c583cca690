package repository

import (
	"context"
	"fmt"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/domain/repository"
	"NZWalks-API/internal/store"
)

type StoreRegionsRepository struct {
	store *store.Store
}

func NewStoreRegionsRepository(s *store.Store) repository.RegionsRepository {
	return &StoreRegionsRepository{
		store: s,
	}
}

func (r *StoreRegionsRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	regions, err := r.store.Regions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("全地域データの取得失敗: %w", err)
	}
	return regions, nil
}

func (r *StoreRegionsRepository) GetByID(ctx context.Context, id string) (*model.Region, error) {
	region, err := r.store.Regions.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnlessNotFound("地域データの取得失敗", err)
	}
	return region, nil
}

// Add クライアント指定のIDは無視し、ストアに新しいIDを払い出させる
func (r *StoreRegionsRepository) Add(ctx context.Context, region *model.Region) (*model.Region, error) {
	record := *region
	record.ID = ""

	created, err := r.store.Regions.Insert(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("地域データの作成失敗: %w", err)
	}
	return created, nil
}

func (r *StoreRegionsRepository) Update(ctx context.Context, id string, region *model.Region) (*model.Region, error) {
	updated, err := r.store.Regions.Update(ctx, id, region)
	if err != nil {
		return nil, wrapUnlessNotFound("地域データの更新失敗", err)
	}
	return updated, nil
}

func (r *StoreRegionsRepository) Delete(ctx context.Context, id string) (*model.Region, error) {
	removed, err := r.store.Regions.Remove(ctx, id)
	if err != nil {
		return nil, wrapUnlessNotFound("地域データの削除失敗", err)
	}
	return removed, nil
}
