// Package config 環境変数（と任意の .env）からアプリケーション設定を読み込む。
//
// 環境変数は NZWALKS_ プレフィックス付きで、ネストは "__" で表す。
// 例: NZWALKS_SERVER__PORT -> server.port, NZWALKS_STORAGE__BACKEND -> storage.backend
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NZWALKS_"

// ストレージのバックエンド名
const (
	BackendMemory    = "memory"
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendSupabase  = "supabase"
	BackendFirestore = "firestore"
)

// Config アプリケーション全体の設定
type Config struct {
	Primary    Primary          `koanf:"primary" validate:"required"`
	Server     ServerConfig     `koanf:"server" validate:"required"`
	Storage    StorageConfig    `koanf:"storage" validate:"required"`
	Auth       AuthConfig       `koanf:"auth"`
	Validation ValidationConfig `koanf:"validation"`
	Log        LogConfig        `koanf:"log"`
}

// Primary 実行環境
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production test"`
}

// ServerConfig HTTPサーバー設定
type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// StorageConfig Entity Store のバックエンド設定
type StorageConfig struct {
	Backend                  string        `koanf:"backend" validate:"required,oneof=memory postgres sqlite supabase firestore"`
	DSN                      string        `koanf:"dsn" validate:"required_if=Backend postgres,required_if=Backend sqlite"`
	ConnectRetries           int           `koanf:"connect_retries" validate:"gte=1"`
	RetryInterval            time.Duration `koanf:"retry_interval" validate:"gte=0"`
	SupabaseURL              string        `koanf:"supabase_url" validate:"required_if=Backend supabase"`
	SupabaseAnonKey          string        `koanf:"supabase_anon_key" validate:"required_if=Backend supabase"`
	FirestoreProjectID       string        `koanf:"firestore_project_id" validate:"required_if=Backend firestore"`
	FirestoreCredentialsFile string        `koanf:"firestore_credentials_file"`
}

// AuthConfig JWTによるロール認可の設定
type AuthConfig struct {
	Enabled   bool          `koanf:"enabled"`
	JWTSecret string        `koanf:"jwt_secret" validate:"required_if=Enabled true"`
	Issuer    string        `koanf:"issuer"`
	Audience  string        `koanf:"audience"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`
}

// ValidationConfig 入力値チェックの有効/無効
type ValidationConfig struct {
	Enabled bool `koanf:"enabled"`
}

// LogConfig ログ設定
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// Default デフォルト値を持つ設定
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Storage: StorageConfig{
			Backend:        BackendMemory,
			ConnectRetries: 5,
			RetryInterval:  time.Second,
		},
		Auth: AuthConfig{
			Issuer:   "nzwalks-api",
			Audience: "nzwalks-api",
			TokenTTL: time.Hour,
		},
		Validation: ValidationConfig{Enabled: true},
		Log:        LogConfig{Level: "info"},
	}
}

// Load .env（存在すれば）と環境変数から設定を読み込み、検証する。
// .env が読み込まれたかどうかを dotenvLoaded で返す
func Load() (cfg *Config, dotenvLoaded bool, err error) {
	dotenvLoaded = godotenv.Load() == nil

	cfg, err = FromEnv()
	return cfg, dotenvLoaded, err
}

// FromEnv 現在のプロセス環境変数だけから設定を組み立てる
func FromEnv() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("環境変数の読み込み失敗: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("設定のアンマーシャル失敗: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate struct タグに従って設定を検証
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("設定の検証失敗: %w", err)
	}
	return nil
}

// Addr サーバーの listen アドレス
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}
