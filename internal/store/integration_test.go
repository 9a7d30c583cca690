package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NZWalks-API/internal/config"
	"NZWalks-API/internal/domain/model"
)

// 外部バックエンドとの結合テスト。環境変数が無ければスキップする
//
//	NZWALKS_TEST_POSTGRES_DSN
//	NZWALKS_TEST_SUPABASE_URL / NZWALKS_TEST_SUPABASE_ANON_KEY
//	FIRESTORE_EMULATOR_HOST / NZWALKS_TEST_FIRESTORE_PROJECT_ID
func TestExternalBackends(t *testing.T) {
	cases := map[string]func() (config.StorageConfig, bool){
		"postgres": func() (config.StorageConfig, bool) {
			dsn := os.Getenv("NZWALKS_TEST_POSTGRES_DSN")
			return config.StorageConfig{
				Backend:        config.BackendPostgres,
				DSN:            dsn,
				ConnectRetries: 5,
				RetryInterval:  time.Second,
			}, dsn != ""
		},
		"supabase": func() (config.StorageConfig, bool) {
			url := os.Getenv("NZWALKS_TEST_SUPABASE_URL")
			key := os.Getenv("NZWALKS_TEST_SUPABASE_ANON_KEY")
			return config.StorageConfig{
				Backend:         config.BackendSupabase,
				SupabaseURL:     url,
				SupabaseAnonKey: key,
			}, url != "" && key != ""
		},
		"firestore": func() (config.StorageConfig, bool) {
			project := os.Getenv("NZWALKS_TEST_FIRESTORE_PROJECT_ID")
			return config.StorageConfig{
				Backend:            config.BackendFirestore,
				FirestoreProjectID: project,
			}, project != "" && os.Getenv("FIRESTORE_EMULATOR_HOST") != ""
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, ok := setup()
			if !ok {
				t.Skipf("%s の接続情報が無いためスキップ", name)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			s, err := Open(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			defer s.Close()

			created, err := s.WalkDifficulties.Insert(ctx, &model.WalkDifficulty{Code: "Integration"})
			require.NoError(t, err)

			got, err := s.WalkDifficulties.GetByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Integration", got.Code)

			updated, err := s.WalkDifficulties.Update(ctx, created.ID, &model.WalkDifficulty{Code: "Integration-2"})
			require.NoError(t, err)
			assert.Equal(t, created.ID, updated.ID)
			assert.Equal(t, "Integration-2", updated.Code)

			removed, err := s.WalkDifficulties.Remove(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.ID, removed.ID)

			_, err = s.WalkDifficulties.Remove(ctx, created.ID)
			assert.ErrorIs(t, err, model.ErrNotFound)
		})
	}
}
