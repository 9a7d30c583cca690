package store

import (
	"context"
	"sync"

	"NZWalks-API/internal/domain/model"
)

// memoryTable プロセス内のテーブル。挿入順を保持する
type memoryTable[T any, PT Entity[T]] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newMemoryTable[T any, PT Entity[T]]() *memoryTable[T, PT] {
	return &memoryTable[T, PT]{rows: make(map[string]T)}
}

// NewMemoryStore プロセス内メモリのストアを作成
func NewMemoryStore() *Store {
	return &Store{
		Regions:          newMemoryTable[model.Region](),
		WalkDifficulties: newMemoryTable[model.WalkDifficulty](),
		Walks:            newMemoryTable[model.Walk](),
	}
}

func (t *memoryTable[T, PT]) Insert(ctx context.Context, rec *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError("挿入", err)
	}
	stored := prepareInsert[T, PT](rec)
	id := PT(&stored).GetID()

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = stored
	return t.copyOf(stored), nil
}

func (t *memoryTable[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError("取得", err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return t.copyOf(row), nil
}

func (t *memoryTable[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError("一覧取得", err)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, 0, len(t.order))
	for _, id := range t.order {
		rows = append(rows, *t.copyOf(t.rows[id]))
	}
	return rows, nil
}

func (t *memoryTable[T, PT]) Update(ctx context.Context, id string, patch *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError("更新", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	PT(&row).ApplyUpdate(patch)
	t.rows[id] = row
	return t.copyOf(row), nil
}

func (t *memoryTable[T, PT]) Remove(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storageError("削除", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return t.copyOf(row), nil
}

// copyOf 保存中の値を呼び出し側と共有しないようにコピーする
func (t *memoryTable[T, PT]) copyOf(row T) *T {
	var out T
	PT(&out).ApplyUpdate(&row)
	PT(&out).SetID(PT(&row).GetID())
	return &out
}
