package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"NZWalks-API/internal/config"
	"NZWalks-API/internal/infrastructure/database"
	fsclient "NZWalks-API/internal/infrastructure/firestore"
)

// Open 設定で指定されたバックエンドのストアを開く
func Open(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (*Store, error) {
	logger = logger.With().Str("backend", cfg.Backend).Logger()

	switch cfg.Backend {
	case config.BackendMemory:
		logger.Info().Msg("🗂️ インメモリストアを使用")
		return NewMemoryStore(), nil

	case config.BackendPostgres, config.BackendSQLite:
		dialect := database.DialectPostgres
		if cfg.Backend == config.BackendSQLite {
			dialect = database.DialectSQLite
		}
		client, err := database.NewSQLClientWithRetry(ctx, dialect, cfg.DSN, cfg.ConnectRetries, cfg.RetryInterval, logger)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureSchema(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}
		logger.Info().Msg("✅ SQLストアに接続")
		return NewSQLStore(client), nil

	case config.BackendSupabase:
		client, err := database.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, err
		}
		logger.Info().Msg("✅ Supabaseストアを初期化")
		return NewSupabaseStore(client), nil

	case config.BackendFirestore:
		client, err := fsclient.NewFirestoreClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile, logger)
		if err != nil {
			return nil, err
		}
		return NewFirestoreStore(client), nil
	}

	return nil, fmt.Errorf("未対応のストレージバックエンド: %s", cfg.Backend)
}
