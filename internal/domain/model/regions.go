package model

// Region 散歩道が属する地域
type Region struct {
	ID             string  `json:"id" db:"id" firestore:"id"`                                           // ユニークな地域ID
	Name           string  `json:"name" db:"name" firestore:"name"`                                     // 地域名
	Code           *string `json:"code" db:"code" firestore:"code"`                                     // 地域コード（任意）
	RegionImageURL *string `json:"region_image_url" db:"region_image_url" firestore:"region_image_url"` // 地域画像のURL（任意）
}

// GetID 地域IDを取得
func (r *Region) GetID() string { return r.ID }

// SetID 地域IDを設定
func (r *Region) SetID(id string) { r.ID = id }

// MutableFields 更新可能なカラムと値
func (r *Region) MutableFields() map[string]any {
	return map[string]any{
		"name":             r.Name,
		"code":             nullableString(r.Code),
		"region_image_url": nullableString(r.RegionImageURL),
	}
}

// ApplyUpdate 更新可能なフィールドだけを src から上書きする
func (r *Region) ApplyUpdate(src *Region) {
	r.Name = src.Name
	r.Code = cloneString(src.Code)
	r.RegionImageURL = cloneString(src.RegionImageURL)
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
