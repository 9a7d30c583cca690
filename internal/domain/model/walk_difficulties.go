package model

// WalkDifficulty 散歩道の難易度
type WalkDifficulty struct {
	ID   string `json:"id" db:"id" firestore:"id"`       // ユニークな難易度ID
	Code string `json:"code" db:"code" firestore:"code"` // 難易度コード（Easy, Medium, Hard など）
}

// GetID 難易度IDを取得
func (d *WalkDifficulty) GetID() string { return d.ID }

// SetID 難易度IDを設定
func (d *WalkDifficulty) SetID(id string) { d.ID = id }

// MutableFields 更新可能なカラムと値
func (d *WalkDifficulty) MutableFields() map[string]any {
	return map[string]any{
		"code": d.Code,
	}
}

// ApplyUpdate 更新可能なフィールドだけを src から上書きする
func (d *WalkDifficulty) ApplyUpdate(src *WalkDifficulty) {
	d.Code = src.Code
}
