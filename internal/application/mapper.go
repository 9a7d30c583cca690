package application

import "NZWalks-API/internal/domain/model"

// ToRegionResponse 永続化された地域をレスポンス形式に変換
func ToRegionResponse(r *model.Region) *model.RegionResponse {
	if r == nil {
		return nil
	}
	return &model.RegionResponse{
		ID:             r.ID,
		Name:           r.Name,
		Code:           r.Code,
		RegionImageURL: r.RegionImageURL,
	}
}

// ToWalkDifficultyResponse 永続化された難易度をレスポンス形式に変換
func ToWalkDifficultyResponse(d *model.WalkDifficulty) *model.WalkDifficultyResponse {
	if d == nil {
		return nil
	}
	return &model.WalkDifficultyResponse{
		ID:   d.ID,
		Code: d.Code,
	}
}

// ToWalkResponse 散歩道をレスポンス形式に変換。未解決の関連は nil のまま
func ToWalkResponse(w *model.Walk) *model.WalkResponse {
	if w == nil {
		return nil
	}
	return &model.WalkResponse{
		ID:               w.ID,
		Name:             w.Name,
		Length:           w.Length,
		RegionID:         w.RegionID,
		WalkDifficultyID: w.WalkDifficultyID,
		Region:           ToRegionResponse(w.Region),
		WalkDifficulty:   ToWalkDifficultyResponse(w.WalkDifficulty),
	}
}

func regionFromAdd(req *model.AddRegionRequest) *model.Region {
	return &model.Region{Name: req.Name, Code: req.Code, RegionImageURL: req.RegionImageURL}
}

func regionFromUpdate(req *model.UpdateRegionRequest) *model.Region {
	return &model.Region{Name: req.Name, Code: req.Code, RegionImageURL: req.RegionImageURL}
}

func walkFromAdd(req *model.AddWalkRequest) *model.Walk {
	return &model.Walk{
		Name:             req.Name,
		Length:           req.Length,
		RegionID:         req.RegionID,
		WalkDifficultyID: req.WalkDifficultyID,
	}
}

func walkFromUpdate(req *model.UpdateWalkRequest) *model.Walk {
	return &model.Walk{
		Name:             req.Name,
		Length:           req.Length,
		RegionID:         req.RegionID,
		WalkDifficultyID: req.WalkDifficultyID,
	}
}

func mapSlice[T any, R any](items []T, f func(*T) *R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, *f(&items[i]))
	}
	return out
}
