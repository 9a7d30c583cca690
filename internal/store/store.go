// Package store Region / WalkDifficulty / Walk のテーブル群（Entity Store）。
//
// どのバックエンドでも Table の契約は同じ:
//   - Insert は ID が空なら新しい UUID を払い出し、更新可能フィールドと ID だけを保存する
//   - GetByID / Update / Remove は存在しない ID に model.ErrNotFound を返す
//   - ストレージ障害は model.ErrStorage でラップして返す
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"NZWalks-API/internal/domain/model"
)

// テーブル（コレクション）名
const (
	TableRegions          = "regions"
	TableWalkDifficulties = "walk_difficulties"
	TableWalks            = "walks"
)

// Entity 保存対象レコードのポインタ型が満たすインターフェース
type Entity[T any] interface {
	*T
	GetID() string
	SetID(id string)
	// MutableFields 更新可能なカラム名と値（nil は NULL）
	MutableFields() map[string]any
	// ApplyUpdate 更新可能フィールドだけを src から上書き
	ApplyUpdate(src *T)
}

// Table 1種類のレコードに対するキー付きストレージ
type Table[T any] interface {
	Insert(ctx context.Context, rec *T) (*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	ListAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, patch *T) (*T, error)
	Remove(ctx context.Context, id string) (*T, error)
}

// Store 3つのテーブルをまとめたハンドル。ライフサイクルはサービス起動/終了に合わせる
type Store struct {
	Regions          Table[model.Region]
	WalkDifficulties Table[model.WalkDifficulty]
	Walks            Table[model.Walk]

	ping  func(ctx context.Context) error
	close func() error
}

// Ping バックエンドへの疎通確認
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	if err := s.ping(ctx); err != nil {
		return storageError("疎通確認失敗", err)
	}
	return nil
}

// Close バックエンドの接続を閉じる
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// newID 新しいレコードIDを払い出す
func newID() string {
	return uuid.New().String()
}

// prepareInsert 保存用のレコードを組み立てる。更新可能フィールド以外（関連など）は落とす
func prepareInsert[T any, PT Entity[T]](rec *T) T {
	var stored T
	PT(&stored).ApplyUpdate(rec)

	id := PT(rec).GetID()
	if id == "" {
		id = newID()
	}
	PT(&stored).SetID(id)
	return stored
}

// storageError ストレージ障害を ErrStorage でラップ。ErrNotFound はそのまま通す
func storageError(op string, err error) error {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", model.ErrStorage, op, err)
}
