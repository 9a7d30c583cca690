package model

import "errors"

var (
	// ErrNotFound 指定IDのレコードが存在しない
	ErrNotFound = errors.New("record not found")

	// ErrStorage ストレージ層の障害（接続断、クエリ失敗、キャンセルなど）。
	// リポジトリはリトライせず、そのまま呼び出し元へ返す
	ErrStorage = errors.New("storage failure")
)
