package application

import (
	"context"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/domain/repository"
)

// WalksService 散歩道に関するユースケース
type WalksService interface {
	// GetAllWalks 地域・難易度を解決済みの全散歩道
	GetAllWalks(ctx context.Context) ([]model.WalkResponse, error)

	// GetWalk 地域・難易度を解決済みの散歩道
	GetWalk(ctx context.Context, id string) (*model.WalkResponse, error)

	// AddWalk 散歩道を作成。関連は次回読み取り時に解決される
	AddWalk(ctx context.Context, req *model.AddWalkRequest) (*model.WalkResponse, error)

	// UpdateWalk 散歩道を更新
	UpdateWalk(ctx context.Context, id string, req *model.UpdateWalkRequest) (*model.WalkResponse, error)

	// DeleteWalk 散歩道を削除
	DeleteWalk(ctx context.Context, id string) (*model.WalkResponse, error)
}

// walksServiceImpl WalksServiceの実装
type walksServiceImpl struct {
	walksRepo repository.WalksRepository
}

// NewWalksService WalksServiceの新しいインスタンスを作成
func NewWalksService(walksRepo repository.WalksRepository) WalksService {
	return &walksServiceImpl{
		walksRepo: walksRepo,
	}
}

func (s *walksServiceImpl) GetAllWalks(ctx context.Context) ([]model.WalkResponse, error) {
	walks, err := s.walksRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(walks, ToWalkResponse), nil
}

func (s *walksServiceImpl) GetWalk(ctx context.Context, id string) (*model.WalkResponse, error) {
	walk, err := s.walksRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWalkResponse(walk), nil
}

func (s *walksServiceImpl) AddWalk(ctx context.Context, req *model.AddWalkRequest) (*model.WalkResponse, error) {
	walk, err := s.walksRepo.Add(ctx, walkFromAdd(req))
	if err != nil {
		return nil, err
	}
	return ToWalkResponse(walk), nil
}

func (s *walksServiceImpl) UpdateWalk(ctx context.Context, id string, req *model.UpdateWalkRequest) (*model.WalkResponse, error) {
	walk, err := s.walksRepo.Update(ctx, id, walkFromUpdate(req))
	if err != nil {
		return nil, err
	}
	return ToWalkResponse(walk), nil
}

func (s *walksServiceImpl) DeleteWalk(ctx context.Context, id string) (*model.WalkResponse, error) {
	walk, err := s.walksRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWalkResponse(walk), nil
}
