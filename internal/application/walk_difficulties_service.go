package application

import (
	"context"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/domain/repository"
)

// WalkDifficultiesService 難易度に関するユースケース
type WalkDifficultiesService interface {
	GetAllWalkDifficulties(ctx context.Context) ([]model.WalkDifficultyResponse, error)
	GetWalkDifficulty(ctx context.Context, id string) (*model.WalkDifficultyResponse, error)
	AddWalkDifficulty(ctx context.Context, req *model.AddWalkDifficultyRequest) (*model.WalkDifficultyResponse, error)
	UpdateWalkDifficulty(ctx context.Context, id string, req *model.UpdateWalkDifficultyRequest) (*model.WalkDifficultyResponse, error)
	DeleteWalkDifficulty(ctx context.Context, id string) (*model.WalkDifficultyResponse, error)
}

type walkDifficultiesServiceImpl struct {
	difficultiesRepo repository.WalkDifficultiesRepository
}

func NewWalkDifficultiesService(difficultiesRepo repository.WalkDifficultiesRepository) WalkDifficultiesService {
	return &walkDifficultiesServiceImpl{
		difficultiesRepo: difficultiesRepo,
	}
}

func (s *walkDifficultiesServiceImpl) GetAllWalkDifficulties(ctx context.Context) ([]model.WalkDifficultyResponse, error) {
	difficulties, err := s.difficultiesRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(difficulties, ToWalkDifficultyResponse), nil
}

func (s *walkDifficultiesServiceImpl) GetWalkDifficulty(ctx context.Context, id string) (*model.WalkDifficultyResponse, error) {
	difficulty, err := s.difficultiesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWalkDifficultyResponse(difficulty), nil
}

func (s *walkDifficultiesServiceImpl) AddWalkDifficulty(ctx context.Context, req *model.AddWalkDifficultyRequest) (*model.WalkDifficultyResponse, error) {
	difficulty, err := s.difficultiesRepo.Add(ctx, &model.WalkDifficulty{Code: req.Code})
	if err != nil {
		return nil, err
	}
	return ToWalkDifficultyResponse(difficulty), nil
}

func (s *walkDifficultiesServiceImpl) UpdateWalkDifficulty(ctx context.Context, id string, req *model.UpdateWalkDifficultyRequest) (*model.WalkDifficultyResponse, error) {
	difficulty, err := s.difficultiesRepo.Update(ctx, id, &model.WalkDifficulty{Code: req.Code})
	if err != nil {
		return nil, err
	}
	return ToWalkDifficultyResponse(difficulty), nil
}

func (s *walkDifficultiesServiceImpl) DeleteWalkDifficulty(ctx context.Context, id string) (*model.WalkDifficultyResponse, error) {
	difficulty, err := s.difficultiesRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToWalkDifficultyResponse(difficulty), nil
}
