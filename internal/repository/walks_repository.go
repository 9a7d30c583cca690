package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/domain/repository"
	"NZWalks-API/internal/store"
)

// StoreWalksRepository 散歩道リポジトリ。
// 地域・難易度の関連は読み取り時にストアを引いて明示的に解決する。
// 参照先が消えていた場合は関連を nil のまま返し、警告ログを出す
type StoreWalksRepository struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewStoreWalksRepository(s *store.Store, logger zerolog.Logger) repository.WalksRepository {
	return &StoreWalksRepository{
		store:  s,
		logger: logger.With().Str("repository", "walks").Logger(),
	}
}

// GetAll 全件を取得し、地域と難易度を一括で解決する
func (r *StoreWalksRepository) GetAll(ctx context.Context) ([]model.Walk, error) {
	walks, err := r.store.Walks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("全散歩データの取得失敗: %w", err)
	}
	if len(walks) == 0 {
		return walks, nil
	}

	regions, err := r.store.Regions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("関連する地域データの取得失敗: %w", err)
	}
	difficulties, err := r.store.WalkDifficulties.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("関連する難易度データの取得失敗: %w", err)
	}

	regionByID := make(map[string]*model.Region, len(regions))
	for i := range regions {
		regionByID[regions[i].ID] = &regions[i]
	}
	difficultyByID := make(map[string]*model.WalkDifficulty, len(difficulties))
	for i := range difficulties {
		difficultyByID[difficulties[i].ID] = &difficulties[i]
	}

	// 散歩道ごとにコピーを持たせ、関連先を共有しない
	for i := range walks {
		if region, ok := regionByID[walks[i].RegionID]; ok {
			rc := *region
			walks[i].Region = &rc
		}
		if difficulty, ok := difficultyByID[walks[i].WalkDifficultyID]; ok {
			dc := *difficulty
			walks[i].WalkDifficulty = &dc
		}
		r.warnDangling(&walks[i])
	}

	return walks, nil
}

// GetByID 1件を取得し、地域と難易度をそれぞれ点検索で解決する
func (r *StoreWalksRepository) GetByID(ctx context.Context, id string) (*model.Walk, error) {
	walk, err := r.store.Walks.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnlessNotFound("散歩データの取得失敗", err)
	}

	region, err := r.store.Regions.GetByID(ctx, walk.RegionID)
	switch {
	case err == nil:
		walk.Region = region
	case !errors.Is(err, model.ErrNotFound):
		return nil, fmt.Errorf("関連する地域データの取得失敗: %w", err)
	}

	difficulty, err := r.store.WalkDifficulties.GetByID(ctx, walk.WalkDifficultyID)
	switch {
	case err == nil:
		walk.WalkDifficulty = difficulty
	case !errors.Is(err, model.ErrNotFound):
		return nil, fmt.Errorf("関連する難易度データの取得失敗: %w", err)
	}

	r.warnDangling(walk)
	return walk, nil
}

// Add 新しいIDで保存し、関連は未解決のまま返す
func (r *StoreWalksRepository) Add(ctx context.Context, walk *model.Walk) (*model.Walk, error) {
	record := model.Walk{
		Name:             walk.Name,
		Length:           walk.Length,
		RegionID:         walk.RegionID,
		WalkDifficultyID: walk.WalkDifficultyID,
	}

	created, err := r.store.Walks.Insert(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("散歩データの作成失敗: %w", err)
	}
	return created, nil
}

// Update name, length, region_id, walk_difficulty_id を上書きする
func (r *StoreWalksRepository) Update(ctx context.Context, id string, walk *model.Walk) (*model.Walk, error) {
	updated, err := r.store.Walks.Update(ctx, id, walk)
	if err != nil {
		return nil, wrapUnlessNotFound("散歩データの更新失敗", err)
	}
	return updated, nil
}

func (r *StoreWalksRepository) Delete(ctx context.Context, id string) (*model.Walk, error) {
	removed, err := r.store.Walks.Remove(ctx, id)
	if err != nil {
		return nil, wrapUnlessNotFound("散歩データの削除失敗", err)
	}
	return removed, nil
}

func (r *StoreWalksRepository) warnDangling(walk *model.Walk) {
	dangling := walk.DanglingReferences()
	if len(dangling) == 0 {
		return
	}
	r.logger.Warn().
		Str("walk_id", walk.ID).
		Str("region_id", walk.RegionID).
		Str("walk_difficulty_id", walk.WalkDifficultyID).
		Strs("dangling", dangling).
		Msg("⚠️ 散歩道の参照先が見つかりません")
}
