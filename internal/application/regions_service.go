package application

import (
	"context"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/domain/repository"
)

// RegionsService 地域に関するユースケース。リポジトリの結果をレスポンス形式に変換する
type RegionsService interface {
	GetAllRegions(ctx context.Context) ([]model.RegionResponse, error)
	GetRegion(ctx context.Context, id string) (*model.RegionResponse, error)
	AddRegion(ctx context.Context, req *model.AddRegionRequest) (*model.RegionResponse, error)
	UpdateRegion(ctx context.Context, id string, req *model.UpdateRegionRequest) (*model.RegionResponse, error)
	DeleteRegion(ctx context.Context, id string) (*model.RegionResponse, error)
}

type regionsServiceImpl struct {
	regionsRepo repository.RegionsRepository
}

func NewRegionsService(regionsRepo repository.RegionsRepository) RegionsService {
	return &regionsServiceImpl{
		regionsRepo: regionsRepo,
	}
}

func (s *regionsServiceImpl) GetAllRegions(ctx context.Context) ([]model.RegionResponse, error) {
	regions, err := s.regionsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(regions, ToRegionResponse), nil
}

func (s *regionsServiceImpl) GetRegion(ctx context.Context, id string) (*model.RegionResponse, error) {
	region, err := s.regionsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRegionResponse(region), nil
}

func (s *regionsServiceImpl) AddRegion(ctx context.Context, req *model.AddRegionRequest) (*model.RegionResponse, error) {
	region, err := s.regionsRepo.Add(ctx, regionFromAdd(req))
	if err != nil {
		return nil, err
	}
	return ToRegionResponse(region), nil
}

func (s *regionsServiceImpl) UpdateRegion(ctx context.Context, id string, req *model.UpdateRegionRequest) (*model.RegionResponse, error) {
	region, err := s.regionsRepo.Update(ctx, id, regionFromUpdate(req))
	if err != nil {
		return nil, err
	}
	return ToRegionResponse(region), nil
}

func (s *regionsServiceImpl) DeleteRegion(ctx context.Context, id string) (*model.RegionResponse, error) {
	region, err := s.regionsRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRegionResponse(region), nil
}
