package database

import (
	"context"
	"fmt"
)

// schema 参照整合性は書き込み時には強制しない（外部キー制約なし）
var schema = []string{
	`CREATE TABLE IF NOT EXISTS regions (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		code             TEXT NULL,
		region_image_url TEXT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS walk_difficulties (
		id   TEXT PRIMARY KEY,
		code TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS walks (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		length             DOUBLE PRECISION NOT NULL,
		region_id          TEXT NOT NULL,
		walk_difficulty_id TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_walks_region_id ON walks (region_id)`,
	`CREATE INDEX IF NOT EXISTS idx_walks_walk_difficulty_id ON walks (walk_difficulty_id)`,
}

// EnsureSchema テーブルが無ければ作成する
func (c *SQLClient) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("スキーマ作成失敗: %w", err)
		}
	}
	return nil
}
