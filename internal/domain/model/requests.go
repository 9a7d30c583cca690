package model

// AddRegionRequest POST /regions のリクエスト
type AddRegionRequest struct {
	Name           string  `json:"name" validate:"required,notblank"`
	Code           *string `json:"code"`
	RegionImageURL *string `json:"region_image_url" validate:"omitempty,url"`
}

// UpdateRegionRequest PUT /regions/:id のリクエスト
type UpdateRegionRequest struct {
	Name           string  `json:"name" validate:"required,notblank"`
	Code           *string `json:"code"`
	RegionImageURL *string `json:"region_image_url" validate:"omitempty,url"`
}

// RegionResponse 地域のレスポンス
type RegionResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Code           *string `json:"code"`
	RegionImageURL *string `json:"region_image_url"`
}

// AddWalkDifficultyRequest POST /walk-difficulties のリクエスト
type AddWalkDifficultyRequest struct {
	Code string `json:"code" validate:"required,notblank"`
}

// UpdateWalkDifficultyRequest PUT /walk-difficulties/:id のリクエスト
type UpdateWalkDifficultyRequest struct {
	Code string `json:"code" validate:"required,notblank"`
}

// WalkDifficultyResponse 難易度のレスポンス
type WalkDifficultyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// AddWalkRequest POST /walks のリクエスト
type AddWalkRequest struct {
	Name             string  `json:"name" validate:"required"`
	Length           float64 `json:"length" validate:"gt=0"`
	RegionID         string  `json:"region_id" validate:"required"`
	WalkDifficultyID string  `json:"walk_difficulty_id" validate:"required"`
}

// UpdateWalkRequest PUT /walks/:id のリクエスト
type UpdateWalkRequest struct {
	Name             string  `json:"name" validate:"required"`
	Length           float64 `json:"length" validate:"gt=0"`
	RegionID         string  `json:"region_id" validate:"required"`
	WalkDifficultyID string  `json:"walk_difficulty_id" validate:"required"`
}

// WalkResponse 散歩道のレスポンス。関連が解決できなかった場合 region / walk_difficulty は null
type WalkResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Length           float64                 `json:"length"`
	RegionID         string                  `json:"region_id"`
	WalkDifficultyID string                  `json:"walk_difficulty_id"`
	Region           *RegionResponse         `json:"region"`
	WalkDifficulty   *WalkDifficultyResponse `json:"walk_difficulty"`
}
