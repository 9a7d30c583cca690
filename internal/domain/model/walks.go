package model

// Walk 散歩道。地域と難易度をIDで1つずつ参照する
type Walk struct {
	ID               string  `json:"id" db:"id" firestore:"id"`                                                 // ユニークな散歩道ID
	Name             string  `json:"name" db:"name" firestore:"name"`                                           // 散歩道の名前
	Length           float64 `json:"length" db:"length" firestore:"length"`                                     // 距離（km）
	RegionID         string  `json:"region_id" db:"region_id" firestore:"region_id"`                            // 参照する地域ID
	WalkDifficultyID string  `json:"walk_difficulty_id" db:"walk_difficulty_id" firestore:"walk_difficulty_id"` // 参照する難易度ID

	// 読み取り時にリポジトリが解決する関連。永続化はされない
	Region         *Region         `json:"region,omitempty" db:"-" firestore:"-"`
	WalkDifficulty *WalkDifficulty `json:"walk_difficulty,omitempty" db:"-" firestore:"-"`
}

// 関連名（DanglingReferences の戻り値）
const (
	AssociationRegion         = "region"
	AssociationWalkDifficulty = "walk_difficulty"
)

// GetID 散歩道IDを取得
func (w *Walk) GetID() string { return w.ID }

// SetID 散歩道IDを設定
func (w *Walk) SetID(id string) { w.ID = id }

// MutableFields 更新可能なカラムと値
func (w *Walk) MutableFields() map[string]any {
	return map[string]any{
		"name":               w.Name,
		"length":             w.Length,
		"region_id":          w.RegionID,
		"walk_difficulty_id": w.WalkDifficultyID,
	}
}

// ApplyUpdate 更新可能なフィールドだけを src から上書きする。関連はコピーしない
func (w *Walk) ApplyUpdate(src *Walk) {
	w.Name = src.Name
	w.Length = src.Length
	w.RegionID = src.RegionID
	w.WalkDifficultyID = src.WalkDifficultyID
}

// DanglingReferences 解決できなかった関連の名前一覧。
// 関連解決後の Walk に対してのみ意味を持つ
func (w *Walk) DanglingReferences() []string {
	var dangling []string
	if w.Region == nil {
		dangling = append(dangling, AssociationRegion)
	}
	if w.WalkDifficulty == nil {
		dangling = append(dangling, AssociationWalkDifficulty)
	}
	return dangling
}
