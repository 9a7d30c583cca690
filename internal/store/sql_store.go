package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"NZWalks-API/internal/domain/model"
	"NZWalks-API/internal/infrastructure/database"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// sqlMapping レコード種別ごとのテーブル定義。columns の先頭は id
type sqlMapping[T any] struct {
	table   string
	columns []string
	scan    func(rowScanner) (*T, error)
}

type sqlTable[T any, PT Entity[T]] struct {
	client  *database.SQLClient
	mapping sqlMapping[T]
}

// NewSQLStore PostgreSQL / SQLite 上のストアを作成。スキーマは作成済みであること
func NewSQLStore(client *database.SQLClient) *Store {
	return &Store{
		Regions:          &sqlTable[model.Region, *model.Region]{client: client, mapping: regionMapping},
		WalkDifficulties: &sqlTable[model.WalkDifficulty, *model.WalkDifficulty]{client: client, mapping: walkDifficultyMapping},
		Walks:            &sqlTable[model.Walk, *model.Walk]{client: client, mapping: walkMapping},
		ping:             client.HealthCheck,
		close:            client.Close,
	}
}

var regionMapping = sqlMapping[model.Region]{
	table:   TableRegions,
	columns: []string{"id", "name", "code", "region_image_url"},
	scan: func(s rowScanner) (*model.Region, error) {
		var r model.Region
		var code, imageURL sql.NullString
		if err := s.Scan(&r.ID, &r.Name, &code, &imageURL); err != nil {
			return nil, err
		}
		if code.Valid {
			r.Code = &code.String
		}
		if imageURL.Valid {
			r.RegionImageURL = &imageURL.String
		}
		return &r, nil
	},
}

var walkDifficultyMapping = sqlMapping[model.WalkDifficulty]{
	table:   TableWalkDifficulties,
	columns: []string{"id", "code"},
	scan: func(s rowScanner) (*model.WalkDifficulty, error) {
		var d model.WalkDifficulty
		if err := s.Scan(&d.ID, &d.Code); err != nil {
			return nil, err
		}
		return &d, nil
	},
}

var walkMapping = sqlMapping[model.Walk]{
	table:   TableWalks,
	columns: []string{"id", "name", "length", "region_id", "walk_difficulty_id"},
	scan: func(s rowScanner) (*model.Walk, error) {
		var w model.Walk
		if err := s.Scan(&w.ID, &w.Name, &w.Length, &w.RegionID, &w.WalkDifficultyID); err != nil {
			return nil, err
		}
		return &w, nil
	},
}

func (t *sqlTable[T, PT]) columnList() string {
	return strings.Join(t.mapping.columns, ", ")
}

func (t *sqlTable[T, PT]) Insert(ctx context.Context, rec *T) (*T, error) {
	stored := prepareInsert[T, PT](rec)
	fields := PT(&stored).MutableFields()

	args := make([]any, 0, len(t.mapping.columns))
	args = append(args, PT(&stored).GetID())
	for _, col := range t.mapping.columns[1:] {
		args = append(args, fields[col])
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.mapping.columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.mapping.table, t.columnList(), placeholders)

	if _, err := t.client.DB.ExecContext(ctx, t.client.Rebind(query), args...); err != nil {
		return nil, storageError(t.mapping.table+"の作成失敗", err)
	}
	return &stored, nil
}

func (t *sqlTable[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.columnList(), t.mapping.table)

	rec, err := t.mapping.scan(t.client.DB.QueryRowContext(ctx, t.client.Rebind(query), id))
	if err != nil {
		return nil, t.rowError(t.mapping.table+"の取得失敗", err)
	}
	return rec, nil
}

func (t *sqlTable[T, PT]) ListAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", t.columnList(), t.mapping.table)

	rows, err := t.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError(t.mapping.table+"の一覧取得失敗", err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		rec, err := t.mapping.scan(rows)
		if err != nil {
			return nil, storageError(t.mapping.table+"のスキャンエラー", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(t.mapping.table+"の一覧取得失敗", err)
	}
	return records, nil
}

// Update UPDATE ... RETURNING の1文で存在確認と更新を行う
func (t *sqlTable[T, PT]) Update(ctx context.Context, id string, patch *T) (*T, error) {
	fields := PT(patch).MutableFields()

	sets := make([]string, 0, len(t.mapping.columns)-1)
	args := make([]any, 0, len(t.mapping.columns))
	for _, col := range t.mapping.columns[1:] {
		sets = append(sets, col+" = ?")
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING %s",
		t.mapping.table, strings.Join(sets, ", "), t.columnList())

	rec, err := t.mapping.scan(t.client.DB.QueryRowContext(ctx, t.client.Rebind(query), args...))
	if err != nil {
		return nil, t.rowError(t.mapping.table+"の更新失敗", err)
	}
	return rec, nil
}

// Remove DELETE ... RETURNING の1文で削除したレコードを返す
func (t *sqlTable[T, PT]) Remove(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ? RETURNING %s", t.mapping.table, t.columnList())

	rec, err := t.mapping.scan(t.client.DB.QueryRowContext(ctx, t.client.Rebind(query), id))
	if err != nil {
		return nil, t.rowError(t.mapping.table+"の削除失敗", err)
	}
	return rec, nil
}

func (t *sqlTable[T, PT]) rowError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return storageError(op, err)
}
