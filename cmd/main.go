package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"NZWalks-API/internal/application"
	"NZWalks-API/internal/auth"
	"NZWalks-API/internal/config"
	"NZWalks-API/internal/handler"
	"NZWalks-API/internal/logger"
	"NZWalks-API/internal/middleware"
	"NZWalks-API/internal/repository"
	"NZWalks-API/internal/store"
	"NZWalks-API/internal/validation"
)

func main() {
	if err := run(); err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Error().Err(err).Msg("NZWalks API server stopped")
		os.Exit(1)
	}
}

// run 戻る前に必ず Entity Store を閉じる
func run() error {
	cfg, dotenvLoaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("設定の読み込み失敗: %w", err)
	}

	log := logger.New(cfg.Log, cfg.Primary.Env)
	if !dotenvLoaded {
		log.Warn().Msg(".envファイルが見つからないため、システム環境変数を使用します")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("backend", cfg.Storage.Backend).Msg("Entity Storeを初期化中...")
	s, err := store.Open(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("Entity Store初期化失敗: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Error().Err(err).Msg("Entity Storeのクローズ失敗")
		}
	}()

	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("ヘルスチェック失敗: %w", err)
	}
	log.Info().Msg("✅ Entity Store接続成功")

	router, err := newRouter(cfg, s, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("NZWalks API server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("サーバー起動失敗: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("シャットダウン中...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("グレースフルシャットダウン失敗: %w", err)
	}
	return nil
}

// newRouter リポジトリ → サービス → ハンドラーを組み立ててルーティングする
func newRouter(cfg *config.Config, s *store.Store, log zerolog.Logger) (*gin.Engine, error) {
	regionsRepo := repository.NewStoreRegionsRepository(s)
	difficultiesRepo := repository.NewStoreWalkDifficultiesRepository(s)
	walksRepo := repository.NewStoreWalksRepository(s, log)

	var v handler.RequestValidator
	if cfg.Validation.Enabled {
		v = validation.New()
	} else {
		log.Warn().Msg("入力値チェックは無効です")
	}

	authz := middleware.NewAuthorizer(nil)
	if cfg.Auth.Enabled {
		tokens, err := auth.NewTokenManager(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("認証の初期化失敗: %w", err)
		}
		authz = middleware.NewAuthorizer(tokens)
	} else {
		log.Warn().Msg("認証は無効です。全てのルートが公開されます")
	}

	handlers := handler.Handlers{
		Health:           handler.NewHealthHandler(s, log),
		Regions:          handler.NewRegionsHandler(application.NewRegionsService(regionsRepo), v, log),
		WalkDifficulties: handler.NewWalkDifficultiesHandler(application.NewWalkDifficultiesService(difficultiesRepo), v, log),
		Walks:            handler.NewWalksHandler(application.NewWalksService(walksRepo), v, log),
	}

	if cfg.Primary.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	handler.RegisterRoutes(router, handlers, authz)
	return router, nil
}
