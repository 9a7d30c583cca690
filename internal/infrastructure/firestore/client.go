package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient Firestoreクライアントを作成。
// credentialsFile が空または存在しない場合はデフォルト認証（Cloud Run / エミュレータ）を使う
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string, logger zerolog.Logger) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("FirestoreのプロジェクトIDが設定されていません")
	}

	var opts []option.ClientOption
	switch {
	case os.Getenv("FIRESTORE_EMULATOR_HOST") != "":
		logger.Info().Str("emulator", os.Getenv("FIRESTORE_EMULATOR_HOST")).Msg("🧪 Firestoreエミュレータに接続")
	case credentialsFile == "":
		logger.Info().Msg("☁️ デフォルト認証を使用")
	default:
		if _, err := os.Stat(credentialsFile); err != nil {
			logger.Warn().Str("credentials_file", credentialsFile).Msg("⚠️ 認証ファイルが見つからないためデフォルト認証を使用")
		} else {
			logger.Info().Str("credentials_file", credentialsFile).Msg("📄 認証ファイルを使用")
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}
	logger.Info().Str("project_id", projectID).Msg("✅ Firestore client initialized")

	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}

// HealthCheck 1件だけ読み出して疎通確認
func (fc *FirestoreClient) HealthCheck(ctx context.Context) error {
	_, err := fc.client.Collection("regions").Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("Firestoreヘルスチェック失敗: %w", err)
	}
	return nil
}
