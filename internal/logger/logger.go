// Package logger zerolog のロガーを設定から組み立てる
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"NZWalks-API/internal/config"
)

// New 設定に従ったロガーを作成。pretty の場合は人間向けのコンソール出力
func New(cfg config.LogConfig, env string) zerolog.Logger {
	return NewWithWriter(cfg, env, os.Stderr)
}

// NewWithWriter 出力先を指定してロガーを作成
func NewWithWriter(cfg config.LogConfig, env string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "nzwalks-api").
		Str("env", env).
		Logger()
}
