package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Dialect SQL方言
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// SQLClient database/sql の接続ラッパー（PostgreSQL または SQLite）
type SQLClient struct {
	DB      *sql.DB
	Dialect Dialect
}

// NewSQLClient 接続を開いて疎通確認する
func NewSQLClient(ctx context.Context, dialect Dialect, dsn string) (*SQLClient, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DSNが設定されていません")
	}

	var driver string
	switch dialect {
	case DialectPostgres:
		driver = "postgres"
	case DialectSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("未対応のSQL方言: %s", dialect)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s接続の初期化に失敗: %w", dialect, err)
	}

	// SQLite はコネクションごとに別DBになり得る（:memory: など）ので1本に絞る
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%sへの接続に失敗: %w", dialect, err)
	}

	return &SQLClient{DB: db, Dialect: dialect}, nil
}

// NewSQLClientWithRetry 起動直後のDB待ちのため、接続を一定間隔でリトライする
func NewSQLClientWithRetry(ctx context.Context, dialect Dialect, dsn string, maxRetries int, interval time.Duration, logger zerolog.Logger) (*SQLClient, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		client, err := NewSQLClient(ctx, dialect, dsn)
		if err == nil {
			return client, nil
		}
		lastErr = err

		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retries", maxRetries).
			Msg("⚠️ データベース接続に失敗、リトライします")

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("データベース接続待ちを中断: %w", ctx.Err())
		case <-time.After(interval):
		}
	}

	return nil, fmt.Errorf("データベース接続に%d回失敗: %w", maxRetries, lastErr)
}

// Close データベース接続を閉じる
func (c *SQLClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// HealthCheck データベース接続のヘルスチェック
func (c *SQLClient) HealthCheck(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("SQLクライアントが初期化されていません")
	}
	return c.DB.PingContext(ctx)
}

// Rebind "?" プレースホルダを方言に合わせて書き換える（PostgreSQL は $1, $2, ...）
func (c *SQLClient) Rebind(query string) string {
	if c.Dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
