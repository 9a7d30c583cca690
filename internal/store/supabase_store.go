package store

import (
	"context"
	"encoding/json"
	"fmt"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/infrastructure/database"
)

// supabaseTable PostgREST（Supabase）経由のテーブル。
// 変更系は returning=representation で結果の行を受け取り、空なら未存在とみなす
type supabaseTable[T any, PT Entity[T]] struct {
	client *database.SupabaseClient
	table  string
}

// NewSupabaseStore Supabase上のストアを作成
func NewSupabaseStore(client *database.SupabaseClient) *Store {
	return &Store{
		Regions:          &supabaseTable[model.Region, *model.Region]{client: client, table: TableRegions},
		WalkDifficulties: &supabaseTable[model.WalkDifficulty, *model.WalkDifficulty]{client: client, table: TableWalkDifficulties},
		Walks:            &supabaseTable[model.Walk, *model.Walk]{client: client, table: TableWalks},
		ping:             client.HealthCheck,
	}
}

func (t *supabaseTable[T, PT]) Insert(ctx context.Context, rec *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError(t.table+"の作成失敗", err)
	}
	stored := prepareInsert[T, PT](rec)

	row := PT(&stored).MutableFields()
	row["id"] = PT(&stored).GetID()

	_, _, err := t.client.GetClient().From(t.table).Insert(row, false, "", "minimal", "").Execute()
	if err != nil {
		return nil, storageError(t.table+"の作成失敗", err)
	}
	return &stored, nil
}

func (t *supabaseTable[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError(t.table+"の取得失敗", err)
	}
	data, _, err := t.client.GetClient().From(t.table).Select("*", "", false).Eq("id", id).Execute()
	if err != nil {
		return nil, storageError(t.table+"の取得失敗", err)
	}
	return t.first(data, t.table+"の取得失敗")
}

func (t *supabaseTable[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError(t.table+"の一覧取得失敗", err)
	}
	data, _, err := t.client.GetClient().From(t.table).Select("*", "", false).Execute()
	if err != nil {
		return nil, storageError(t.table+"の一覧取得失敗", err)
	}
	return t.decode(data, t.table+"の一覧取得失敗")
}

func (t *supabaseTable[T, PT]) Update(ctx context.Context, id string, patch *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError(t.table+"の更新失敗", err)
	}
	data, _, err := t.client.GetClient().From(t.table).
		Update(PT(patch).MutableFields(), "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, storageError(t.table+"の更新失敗", err)
	}
	return t.first(data, t.table+"の更新失敗")
}

func (t *supabaseTable[T, PT]) Remove(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError(t.table+"の削除失敗", err)
	}
	data, _, err := t.client.GetClient().From(t.table).Delete("representation", "").Eq("id", id).Execute()
	if err != nil {
		return nil, storageError(t.table+"の削除失敗", err)
	}
	return t.first(data, t.table+"の削除失敗")
}

func (t *supabaseTable[T, PT]) decode(data []byte, op string) ([]T, error) {
	records := make([]T, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, storageError(op, fmt.Errorf("JSONアンマーシャル失敗: %w", err))
	}
	return records, nil
}

func (t *supabaseTable[T, PT]) first(data []byte, op string) (*T, error) {
	records, err := t.decode(data, op)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, model.ErrNotFound
	}
	return &records[0], nil
}
