package database

import (
	"context"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient Supabaseクライアントのラッパー
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient 新しいSupabaseクライアントを作成
func NewSupabaseClient(supabaseURL, supabaseAnonKey string) (*SupabaseClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("SupabaseのURLが設定されていません")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("Supabaseのanonキーが設定されていません")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("Supabaseクライアントの初期化に失敗: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient Supabaseクライアントを取得
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck regions テーブルへの軽量クエリで疎通確認
func (sc *SupabaseClient) HealthCheck(ctx context.Context) error {
	if sc.Client == nil {
		return fmt.Errorf("Supabaseクライアントが初期化されていません")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, _, err := sc.Client.From("regions").Select("id", "", false).Limit(1, "").Execute()
	if err != nil {
		return fmt.Errorf("Supabaseヘルスチェック失敗: %w", err)
	}
	return nil
}
